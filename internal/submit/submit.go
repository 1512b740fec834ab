// Package submit runs the simulated Upload and Search submissions: validate,
// wait a fixed artificial delay, then report canned outcomes.
//
// Each flow is split into Begin (validation and the messages shown before the
// wait) and Finish (the wait and the final messages) so the UI can show a
// spinner in between. Submit* run both halves back to back.
package submit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/search"
)

// ErrNoFile is returned when an upload is submitted without a file.
var ErrNoFile = errors.New("no file selected")

const (
	// UploadSpinnerText is shown while an upload is being processed.
	UploadSpinnerText = "Extracting text, generating summary, and indexing..."
	// SearchSpinnerText is shown while a search is running.
	SearchSpinnerText = "Retrieving results from ElasticSearch..."

	msgNoFile       = "Please select a file to upload."
	msgEmptyQuery   = "Please enter a search query."
	msgNoResults    = "No documents found matching your query and filters."
	msgProcessing   = "Processing document..."
	msgProcessed    = "Document processed and indexed!"
	msgSummaryLater = "A summary and relevant links will be available in the Search section shortly."

	DefaultUploadDelay = 3 * time.Second
	DefaultSearchDelay = 2 * time.Second
)

// Outcome is one user-visible message produced by a submission.
type Outcome struct {
	Tone    render.Tone
	Message string
}

// Node converts the outcome into a render node. Untoned outcomes are plain text.
func (o Outcome) Node() render.Node {
	if o.Tone == render.ToneNone {
		return render.Text(o.Message)
	}
	return render.Callout(o.Tone, o.Message)
}

// Options configures Flows. Zero delays are honoured as "no wait"; use
// DefaultUploadDelay and DefaultSearchDelay for the stock timings.
type Options struct {
	UploadDelay time.Duration
	SearchDelay time.Duration
	Filter      search.Filter
	Results     func() []fixtures.DocumentRecord
	NewID       func() string
	Logger      *zap.Logger
}

// Flows holds the collaborators shared by both submissions.
type Flows struct {
	uploadDelay time.Duration
	searchDelay time.Duration
	filter      search.Filter
	results     func() []fixtures.DocumentRecord
	newID       func() string
	logger      *zap.Logger
}

// New builds Flows, filling unset collaborators with the production ones.
func New(opts Options) *Flows {
	f := &Flows{
		uploadDelay: opts.UploadDelay,
		searchDelay: opts.SearchDelay,
		filter:      opts.Filter,
		results:     opts.Results,
		newID:       opts.NewID,
		logger:      opts.Logger,
	}
	if f.filter == nil {
		f.filter = search.Engine{}
	}
	if f.results == nil {
		f.results = fixtures.SearchResults
	}
	if f.newID == nil {
		f.newID = newReceiptID
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

// UploadDelay returns the configured processing delay.
func (f *Flows) UploadDelay() time.Duration { return f.uploadDelay }

// SearchDelay returns the configured search delay.
func (f *Flows) SearchDelay() time.Duration { return f.searchDelay }

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated wait: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
