// Package view renders each section into a render.Tree. Renderers read only
// their Input and the fixtures and never touch the terminal or the network.
package view

import (
	"github.com/dustin/go-humanize"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
)

// Button and expander identifiers the UI reacts to.
const (
	ButtonReviewPending = "review-pending"
	ButtonUploadNew     = "upload-new"
	ButtonUploadSubmit  = "upload-submit"
	ButtonSearchSubmit  = "search-submit"
)

// Input is everything a renderer may read besides the fixtures.
type Input struct {
	// Animation is the section's decoration, nil when it did not load.
	Animation *render.Animation
	Upload    UploadState
	Search    SearchState
	// Monthly is the analytics upload series; nil draws a fresh one.
	Monthly fixtures.Series
}

// UploadState is the Upload section's local state.
type UploadState struct {
	Outcomes []submit.Outcome
	Pending  bool
	Receipt  *submit.Receipt
}

// SearchState is the Search section's local state.
type SearchState struct {
	Outcomes []submit.Outcome
	Pending  bool
	Result   *submit.SearchResult
}

// Render dispatches to the section's renderer.
func Render(s state.Section, in Input) render.Tree {
	switch s {
	case state.Dashboard:
		return Dashboard(in)
	case state.Upload:
		return Upload(in)
	case state.Search:
		return Search(in)
	case state.Analytics:
		return Analytics(in)
	case state.About:
		return About(in)
	default:
		return Home(in)
	}
}

// FunctionsExpanderID names the "Functions and Technologies" panel of s.
func FunctionsExpanderID(s state.Section) string {
	return s.Key() + "-functions"
}

// PreviewExpanderID names the preview panel of a search result.
func PreviewExpanderID(docID string) string {
	return "preview-" + docID
}

func tree(s state.Section, nodes ...render.Node) render.Tree {
	return render.Tree{Section: s, Title: s.String(), Nodes: nodes}
}

func decoration(in Input) []render.Node {
	if in.Animation == nil {
		return nil
	}
	return []render.Node{render.AnimationNode(*in.Animation)}
}

func functionsExpander(s state.Section, title string, items ...string) render.Node {
	return render.Expander(FunctionsExpanderID(s), title, render.List("", items...))
}

func outcomeNodes(outcomes []submit.Outcome) []render.Node {
	nodes := make([]render.Node, 0, len(outcomes))
	for _, o := range outcomes {
		nodes = append(nodes, o.Node())
	}
	return nodes
}

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func points(series fixtures.Series) []render.Point {
	out := make([]render.Point, len(series))
	for i, c := range series {
		out[i] = render.Point{Label: c.Label, Value: float64(c.Value)}
	}
	return out
}
