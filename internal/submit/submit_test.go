package submit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/search"
)

type recordingFilter struct {
	calls int
}

func (r *recordingFilter) Apply(records []fixtures.DocumentRecord, types []fixtures.DocumentType) []fixtures.DocumentRecord {
	r.calls++
	return search.Apply(records, types)
}

func countTone(outcomes []Outcome, tone render.Tone) int {
	n := 0
	for _, o := range outcomes {
		if o.Tone == tone {
			n++
		}
	}
	return n
}

func TestSubmitUpload_NoFileIsSingleError(t *testing.T) {
	flows := New(Options{})
	outcomes, err := flows.SubmitUpload(context.Background(), Upload{Title: "ignored"})
	if !errors.Is(err, ErrNoFile) {
		t.Fatalf("SubmitUpload error = %v, want ErrNoFile", err)
	}
	if len(outcomes) != 1 || outcomes[0].Tone != render.ToneError {
		t.Fatalf("outcomes = %#v, want exactly one error", outcomes)
	}
	if outcomes[0].Message != "Please select a file to upload." {
		t.Fatalf("message = %q", outcomes[0].Message)
	}
	if countTone(outcomes, render.ToneSuccess) != 0 {
		t.Fatalf("outcomes contain a success: %#v", outcomes)
	}
}

func TestSubmitUpload_WithFileSucceedsAfterWait(t *testing.T) {
	flows := New(Options{NewID: func() string { return "receipt-1" }})
	u := Upload{File: &File{Name: "schedule.pdf", Size: 2048}, Type: fixtures.TypePolicy}

	outcomes, err := flows.SubmitUpload(context.Background(), u)
	if err != nil {
		t.Fatalf("SubmitUpload returned error: %v", err)
	}

	naming := 0
	for _, o := range outcomes {
		if o.Tone == render.ToneSuccess && strings.Contains(o.Message, "schedule.pdf") {
			naming++
		}
	}
	if naming != 1 {
		t.Fatalf("success outcomes naming the file = %d, want 1: %#v", naming, outcomes)
	}
	if countTone(outcomes, render.ToneError) != 0 {
		t.Fatalf("outcomes contain an error: %#v", outcomes)
	}

	var sawTitle, sawType bool
	for _, o := range outcomes {
		sawTitle = sawTitle || o.Message == "Title: schedule.pdf"
		sawType = sawType || o.Message == "Type: Policy"
	}
	if !sawTitle || !sawType {
		t.Fatalf("outcomes missing title/type lines: %#v", outcomes)
	}
}

func TestFinishUpload_ReceiptUsesTitleAndSize(t *testing.T) {
	flows := New(Options{NewID: func() string { return "receipt-2" }})
	u := Upload{File: &File{Name: "a.xlsx", Size: 1_500_000}, Title: "  Budget  "}

	result, err := flows.FinishUpload(context.Background(), u)
	if err != nil {
		t.Fatalf("FinishUpload returned error: %v", err)
	}
	want := Receipt{ID: "receipt-2", Title: "Budget", Type: fixtures.TypeReport, FileName: "a.xlsx", Size: "1.5 MB"}
	if result.Receipt != want {
		t.Fatalf("Receipt = %#v, want %#v", result.Receipt, want)
	}
}

func TestFinishUpload_HonoursCancellation(t *testing.T) {
	flows := New(Options{UploadDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := flows.FinishUpload(ctx, Upload{File: &File{Name: "x.txt"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("FinishUpload error = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("FinishUpload blocked despite cancelled context")
	}
}

func TestFinishUpload_WaitsConfiguredDelay(t *testing.T) {
	flows := New(Options{UploadDelay: 30 * time.Millisecond})
	start := time.Now()
	if _, err := flows.FinishUpload(context.Background(), Upload{File: &File{Name: "x.txt"}}); err != nil {
		t.Fatalf("FinishUpload returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("FinishUpload returned after %v, want >= 30ms", elapsed)
	}
}

func TestSubmitSearch_EmptyQueryNeverFilters(t *testing.T) {
	filter := &recordingFilter{}
	flows := New(Options{Filter: filter})

	for _, q := range []string{"", "   "} {
		outcomes, _, err := flows.SubmitSearch(context.Background(), search.Request{Query: q, Types: []fixtures.DocumentType{fixtures.TypeReport}})
		if !errors.Is(err, search.ErrEmptyQuery) {
			t.Fatalf("SubmitSearch(%q) error = %v, want ErrEmptyQuery", q, err)
		}
		if len(outcomes) != 1 || outcomes[0].Tone != render.ToneWarning {
			t.Fatalf("outcomes = %#v, want exactly one warning", outcomes)
		}
	}
	if _, err := flows.FinishSearch(context.Background(), search.Request{}); !errors.Is(err, search.ErrEmptyQuery) {
		t.Fatalf("FinishSearch error = %v, want ErrEmptyQuery", err)
	}
	if filter.calls != 0 {
		t.Fatalf("filter called %d times, want 0", filter.calls)
	}
}

func TestSubmitSearch_EchoesAndFilters(t *testing.T) {
	filter := &recordingFilter{}
	flows := New(Options{Filter: filter})
	req := search.Request{Query: " metro maintenance ", Types: []fixtures.DocumentType{fixtures.TypeInvoice, fixtures.TypePolicy}}

	outcomes, result, err := flows.SubmitSearch(context.Background(), req)
	if err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}
	if want := "Searching for: 'metro maintenance' (Filters: Invoice, Policy)"; outcomes[0].Message != want {
		t.Fatalf("echo = %q, want %q", outcomes[0].Message, want)
	}
	if filter.calls != 1 {
		t.Fatalf("filter called %d times, want 1", filter.calls)
	}
	if len(result.Records) != 2 || result.Records[0].ID != "DOC-2087" || result.Records[1].ID != "DOC-1150" {
		t.Fatalf("records = %#v, want DOC-2087, DOC-1150", result.Records)
	}
	if len(result.Outcomes) != 0 {
		t.Fatalf("result outcomes = %#v, want none", result.Outcomes)
	}
}

func TestSubmitSearch_NoFiltersEchoesNone(t *testing.T) {
	flows := New(Options{})
	outcomes, result, err := flows.SubmitSearch(context.Background(), search.Request{Query: "budget"})
	if err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}
	if !strings.HasSuffix(outcomes[0].Message, "(Filters: None)") {
		t.Fatalf("echo = %q, want Filters: None", outcomes[0].Message)
	}
	if len(result.Records) != len(fixtures.SearchResults()) {
		t.Fatalf("records = %d, want all %d", len(result.Records), len(fixtures.SearchResults()))
	}
}

func TestSubmitSearch_NoMatchesWarns(t *testing.T) {
	flows := New(Options{})
	outcomes, result, err := flows.SubmitSearch(context.Background(), search.Request{Query: "drawings", Types: []fixtures.DocumentType{fixtures.TypeDrawing}})
	if err != nil {
		t.Fatalf("SubmitSearch returned error: %v", err)
	}
	if len(result.Records) != 0 {
		t.Fatalf("records = %#v, want none", result.Records)
	}
	last := outcomes[len(outcomes)-1]
	if last.Tone != render.ToneWarning || last.Message != "No documents found matching your query and filters." {
		t.Fatalf("last outcome = %#v, want no-results warning", last)
	}
}

func TestStatFileAndAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minutes.docx")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f, err := StatFile(path)
	if err != nil {
		t.Fatalf("StatFile returned error: %v", err)
	}
	if f.Name != "minutes.docx" || f.Size != 5 {
		t.Fatalf("StatFile = %#v, want minutes.docx/5", f)
	}
	if _, err := StatFile(filepath.Dir(path)); err == nil {
		t.Fatalf("StatFile(dir) returned nil error")
	}

	tests := map[string]bool{"a.PDF": true, "b.xlsx": true, "c.exe": false, "noext": false, "d.jpeg": false}
	for name, want := range tests {
		if got := AllowedFile(name); got != want {
			t.Fatalf("AllowedFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestOutcomeNode(t *testing.T) {
	if n := (Outcome{Message: "Type: Legal"}).Node(); n.Kind != render.KindText {
		t.Fatalf("plain outcome kind = %q, want text", n.Kind)
	}
	if n := (Outcome{Tone: render.ToneError, Message: "x"}).Node(); n.Kind != render.KindCallout || n.Tone != render.ToneError {
		t.Fatalf("error outcome node = %#v, want error callout", n)
	}
}
