// Package search filters the canned result set by document type.
//
// Query text is validated and echoed back but never matched against record
// content.
package search

import (
	"errors"
	"strings"

	"github.com/five82/akshrail/internal/fixtures"
)

// ErrEmptyQuery is returned when a search is submitted without query text.
var ErrEmptyQuery = errors.New("empty search query")

// Request is one search submission.
type Request struct {
	Query string
	Types []fixtures.DocumentType
}

// Validate reports ErrEmptyQuery for a blank query.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// FilterLabel renders the selected filters for the echo line, "None" when
// there are none.
func (r Request) FilterLabel() string {
	if len(r.Types) == 0 {
		return "None"
	}
	parts := make([]string, len(r.Types))
	for i, t := range r.Types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// Filter narrows a result set. Engine implements it for production; tests
// substitute their own to observe calls.
type Filter interface {
	Apply(records []fixtures.DocumentRecord, types []fixtures.DocumentType) []fixtures.DocumentRecord
}

// Engine is the type-membership filter.
type Engine struct{}

var _ Filter = Engine{}

// Apply calls the package-level Apply.
func (Engine) Apply(records []fixtures.DocumentRecord, types []fixtures.DocumentType) []fixtures.DocumentRecord {
	return Apply(records, types)
}

// Apply keeps the records whose type is in types, preserving order. With no
// types every record is kept. The input slice is never modified.
func Apply(records []fixtures.DocumentRecord, types []fixtures.DocumentType) []fixtures.DocumentRecord {
	if len(types) == 0 {
		out := make([]fixtures.DocumentRecord, len(records))
		copy(out, records)
		return out
	}
	allowed := make(map[fixtures.DocumentType]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	out := make([]fixtures.DocumentRecord, 0, len(records))
	for _, r := range records {
		if _, ok := allowed[r.Type]; ok {
			out = append(out, r)
		}
	}
	return out
}
