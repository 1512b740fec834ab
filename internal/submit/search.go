package submit

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/search"
)

// SearchResult is what a search leaves on screen once it completes. Records is
// empty when nothing matched, in which case Outcomes carries the warning.
type SearchResult struct {
	Request  search.Request
	Records  []fixtures.DocumentRecord
	Outcomes []Outcome
}

// BeginSearch validates req. A blank query returns the single warning and
// search.ErrEmptyQuery; otherwise the echo line shown while searching.
func (f *Flows) BeginSearch(req search.Request) ([]Outcome, error) {
	if err := req.Validate(); err != nil {
		return []Outcome{{Tone: render.ToneWarning, Message: msgEmptyQuery}}, err
	}
	return []Outcome{{
		Tone:    render.ToneSuccess,
		Message: fmt.Sprintf("Searching for: '%s' (Filters: %s)", strings.TrimSpace(req.Query), req.FilterLabel()),
	}}, nil
}

// FinishSearch waits out the search delay, then filters the canned results by
// the requested types. The filter is never consulted for a blank query.
func (f *Flows) FinishSearch(ctx context.Context, req search.Request) (SearchResult, error) {
	if err := req.Validate(); err != nil {
		return SearchResult{}, err
	}
	if err := wait(ctx, f.searchDelay); err != nil {
		return SearchResult{}, err
	}

	records := f.filter.Apply(f.results(), req.Types)
	f.logger.Info("search completed",
		zap.String("query", strings.TrimSpace(req.Query)),
		zap.String("filters", req.FilterLabel()),
		zap.Int("results", len(records)),
	)

	result := SearchResult{Request: req, Records: records}
	if len(records) == 0 {
		result.Outcomes = []Outcome{{Tone: render.ToneWarning, Message: msgNoResults}}
	}
	return result, nil
}

// SubmitSearch runs BeginSearch and FinishSearch in sequence.
func (f *Flows) SubmitSearch(ctx context.Context, req search.Request) ([]Outcome, SearchResult, error) {
	begun, err := f.BeginSearch(req)
	if err != nil {
		return begun, SearchResult{}, err
	}
	result, err := f.FinishSearch(ctx, req)
	if err != nil {
		return begun, SearchResult{}, err
	}
	return append(begun, result.Outcomes...), result, nil
}
