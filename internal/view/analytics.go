package view

import (
	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

// Analytics renders the three charts.
func Analytics(in Input) render.Tree {
	monthly := in.Monthly
	if monthly == nil {
		monthly = fixtures.MonthlyUploads(nil)
	}

	nodes := []render.Node{
		render.Heading("📈 Analytics & Insights"),
		render.Callout(render.ToneInfo, "Unlock meaningful insights from your document data. Visualize trends, identify bottlenecks, and monitor system usage."),
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes,
		render.Divider(),
		render.Subheading("Monthly Document Uploads"),
		render.ChartNode(render.Chart{
			Kind:   render.ChartLine,
			Title:  "Monthly Document Upload Trend",
			XLabel: "Month",
			YLabel: "Number of Documents",
			Points: points(monthly),
		}),
		render.Subheading("Document Status Distribution"),
		render.ChartNode(render.Chart{
			Kind:   render.ChartBar,
			Title:  "Current Document Status",
			XLabel: "Status",
			YLabel: "Count",
			Points: points(fixtures.StatusDistribution()),
		}),
		render.Divider(),
		render.Subheading("Top 5 Most Searched Keywords"),
		render.ChartNode(render.Chart{
			Kind:   render.ChartBarH,
			Title:  "Most Frequent Search Terms",
			XLabel: "Search Count",
			YLabel: "Keyword",
			Points: points(fixtures.TopKeywords()),
		}),
		functionsExpander(state.Analytics, "🛠️ Functions and Technologies on Analytics Page",
			"Data aggregation: a live system would aggregate metadata from PostgreSQL/MongoDB and search counts from ElasticSearch.",
			"Line chart: trends over time, such as monthly uploads.",
			"Bar charts: comparisons across categories, such as status and top keywords.",
			"Pie chart (on Dashboard): distribution of document types.",
			"Analytics engine (backend): a dedicated service would compute these series.",
		),
	)
	return tree(state.Analytics, nodes...)
}
