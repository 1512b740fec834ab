package view

import (
	"fmt"
	"math"

	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
	"github.com/five82/akshrail/internal/submit"
)

// Search renders the search page: echo line, then either the results or the
// no-results warning.
func Search(in Input) render.Tree {
	nodes := []render.Node{
		render.Heading("🔍 Smart Search & Retrieve Documents"),
		render.Callout(render.ToneInfo, "Find any document instantly with advanced search capabilities. Use keywords, document IDs, or even natural language queries."),
		render.Button(ButtonSearchSubmit, "Perform Smart Search", nil),
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes, render.Divider())
	nodes = append(nodes, outcomeNodes(in.Search.Outcomes)...)

	switch {
	case in.Search.Pending:
		nodes = append(nodes, render.Callout(render.ToneNone, "⏳ "+submit.SearchSpinnerText))
	case in.Search.Result != nil:
		nodes = append(nodes, outcomeNodes(in.Search.Result.Outcomes)...)
		if len(in.Search.Result.Records) > 0 {
			nodes = append(nodes, render.Subheading("Search Results"))
			for _, r := range in.Search.Result.Records {
				nodes = append(nodes, resultNodes(r)...)
			}
		}
	}

	nodes = append(nodes, functionsExpander(state.Search, "🛠️ Functions and Technologies on Search Page",
		"Query input & submit: type keywords, a document ID or a natural language question.",
		"Type filter: tick document types to narrow the results.",
		"ElasticSearch (backend): full-text search over content and summaries, faceted filtering by type.",
		"Semantic search (NLP): sentence-transformer embeddings for vector similarity on natural language queries.",
		"Relevance ranking: results are ordered by the engine's relevance score.",
		"Backend API: relays queries to ElasticSearch and formats the results.",
	))
	return tree(state.Search, nodes...)
}

func resultNodes(r fixtures.DocumentRecord) []render.Node {
	line := "Type: " + string(r.Type)
	if r.Relevance != nil {
		line += fmt.Sprintf(" | Relevance: %d%%", int(math.Round(*r.Relevance*100)))
	}
	return []render.Node{
		render.Subheading(fmt.Sprintf("%s (ID: %s)", r.Title, r.ID)),
		render.Text(line),
		render.Expander(PreviewExpanderID(r.ID), "Read Preview", render.Text(r.Preview)),
		render.Button("view-"+r.ID, r.Link(), nil),
		render.Divider(),
	}
}
