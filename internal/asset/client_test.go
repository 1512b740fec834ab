package asset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const sampleLottie = `{"v":"5.7.4","nm":"metro train","fr":30,"ip":0,"op":90,"w":400,"h":300,"layers":[{},{},{}],"assets":[]}`

func TestClient_FetchDecodesAnimation(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleLottie))
	}))
	t.Cleanup(server.Close)

	c := NewClient(2*time.Second, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	doc, ok := c.Fetch(ctx, server.URL+"/train.json")
	if !ok {
		t.Fatalf("Fetch ok = false, want true")
	}
	if doc.Name != "metro train" || doc.Width != 400 || doc.Height != 300 {
		t.Fatalf("Fetch doc = %#v, want decoded header", doc)
	}
	if doc.Frames() != 90 {
		t.Fatalf("Frames() = %d, want 90", doc.Frames())
	}

	summary := doc.Summary(server.URL + "/train.json")
	if summary.Layers != 3 || summary.FrameRate != 30 {
		t.Fatalf("Summary = %#v, want 3 layers at 30fps", summary)
	}
	if !strings.HasPrefix(gotUserAgent, "akshrail/") {
		t.Fatalf("User-Agent = %q, want akshrail/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchAbsentOnFailure(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/missing.json":
			http.NotFound(w, r)
		case "/broken.json":
			_, _ = w.Write([]byte("{not-json"))
		case "/accepted.json":
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(sampleLottie))
		case "/error.json":
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c := NewClient(time.Second, nil)
	for _, path := range []string{"/missing.json", "/broken.json", "/accepted.json", "/error.json"} {
		if doc, ok := c.Fetch(context.Background(), server.URL+path); ok {
			t.Fatalf("Fetch(%s) = %#v, true, want absent", path, doc)
		}
	}
	if got := hits.Load(); got != 4 {
		t.Fatalf("server hits = %d, want one per fetch (4)", got)
	}
}

func TestClient_FetchAbsentOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(time.Second, nil)
	if _, ok := c.Fetch(context.Background(), url+"/gone.json"); ok {
		t.Fatalf("Fetch on closed server ok = true, want false")
	}
}

func TestClient_FetchRejectsBadURLs(t *testing.T) {
	c := NewClient(0, nil)
	for _, raw := range []string{"", "   ", "file:///etc/passwd", "://nope"} {
		if _, ok := c.Fetch(context.Background(), raw); ok {
			t.Fatalf("Fetch(%q) ok = true, want false", raw)
		}
	}
}

func TestClient_FetchHonoursCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(5*time.Second, nil)
	if _, ok := c.Fetch(ctx, server.URL+"/slow.json"); ok {
		t.Fatalf("Fetch with cancelled context ok = true, want false")
	}
}

func TestNilClientFetch(t *testing.T) {
	var c *Client
	if _, ok := c.Fetch(context.Background(), "https://example.test/a.json"); ok {
		t.Fatalf("nil client Fetch ok = true, want false")
	}
}

func TestLottie_FramesClampsReversedRange(t *testing.T) {
	if got := (Lottie{InPoint: 10, OutPoint: 5}).Frames(); got != 0 {
		t.Fatalf("Frames() = %d, want 0", got)
	}
}
