package view

import (
	"github.com/five82/akshrail/internal/fixtures"
	"github.com/five82/akshrail/internal/render"
	"github.com/five82/akshrail/internal/state"
)

// Dashboard renders the overview with metrics, quick actions, recent activity
// and the type distribution.
func Dashboard(in Input) render.Tree {
	metrics := make([]render.Node, 0, 3)
	for _, m := range fixtures.DashboardMetrics() {
		metrics = append(metrics, render.Metric(m.Label, formatCount(m.Value), m.Help))
	}

	activity := fixtures.ActivityRecords()
	rows := make([][]string, 0, len(activity))
	for _, r := range activity {
		rows = append(rows, []string{r.ID, r.Title, string(r.Type), r.LastModified.Format("2006-01-02"), string(r.Status)})
	}

	nodes := []render.Node{
		render.Heading("📊 AkshRail Dashboard"),
		render.Callout(render.ToneInfo, "Your main control center: Get an overview of document activity, pending tasks, and system health."),
		render.Columns(metrics...),
	}
	nodes = append(nodes, decoration(in)...)
	nodes = append(nodes,
		render.Subheading("Quick Actions"),
		render.Columns(
			render.Button(ButtonReviewPending, "Review Pending Documents", render.NavigateTo(state.Search)),
			render.Button(ButtonUploadNew, "Upload New Document", render.NavigateTo(state.Upload)),
		),
		render.Divider(),
		render.Subheading("Recent Document Activity"),
		render.TableNode([]string{"Document ID", "Title", "Type", "Last Modified", "Status"}, rows),
		render.Divider(),
		render.Subheading("Document Type Distribution"),
		render.ChartNode(render.Chart{
			Kind:   render.ChartPie,
			Title:  "Distribution by Document Type",
			Points: points(fixtures.TypeDistribution(activity)),
		}),
		functionsExpander(state.Dashboard, "🛠️ Functions and Technologies on Dashboard",
			"Metrics & KPIs: headline numbers that a live system would aggregate from the metadata database.",
			"Animations: the decoration beside the metrics is fetched on every visit and skipped when unavailable.",
			"Activity table: recent document activity as it would come from ElasticSearch or the database.",
			"Pie chart: distribution of document types across the recent activity.",
			"Quick actions: buttons that jump straight to Search or Upload.",
		),
	)
	return tree(state.Dashboard, nodes...)
}
