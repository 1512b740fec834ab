package fixtures

import (
	"math/rand/v2"
	"time"
)

// IntSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

const (
	monthlyUploadsMin = 150
	monthlyUploadsMax = 300 // exclusive
)

var uploadMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct"}

// DashboardMetrics returns the three headline numbers.
func DashboardMetrics() []Metric {
	return []Metric{
		{Label: "Total Documents Indexed", Value: 1245, Help: "Across all departments"},
		{Label: "Documents Awaiting Review", Value: 37, Help: "Requires immediate attention"},
		{Label: "New Uploads This Month", Value: 223, Help: "Compared to last month"},
	}
}

// ActivityRecords returns the recent-activity table, newest first.
func ActivityRecords() []DocumentRecord {
	return []DocumentRecord{
		{ID: "DOC-1023", Title: "Maintenance Schedule Q3", Type: TypeReport, LastModified: day(2023, 10, 26), Status: StatusApproved},
		{ID: "DOC-2087", Title: "Vendor Invoice #4567", Type: TypeInvoice, LastModified: day(2023, 10, 25), Status: StatusPendingPayment},
		{ID: "DOC-1150", Title: "Safety Protocol Update", Type: TypePolicy, LastModified: day(2023, 10, 24), Status: StatusUnderReview},
		{ID: "DOC-0998", Title: "Board Meeting Minutes", Type: TypeMinutes, LastModified: day(2023, 10, 23), Status: StatusFinalized},
		{ID: "DOC-3011", Title: "New Project Proposal", Type: TypeProposal, LastModified: day(2023, 10, 22), Status: StatusDraft},
	}
}

// SearchResults returns the canned search hits in descending relevance.
func SearchResults() []DocumentRecord {
	return []DocumentRecord{
		{ID: "DOC-1023", Title: "Metro Line 1 Maintenance Report Q3 2023", Type: TypeReport, Relevance: relevance(0.95), Preview: "Summary: Overview of routine maintenance tasks..."},
		{ID: "DOC-2087", Title: "Invoice ABC Corp #4567 for Q2", Type: TypeInvoice, Relevance: relevance(0.88), Preview: "Summary: Details of materials supplied by..."},
		{ID: "DOC-1150", Title: "Updated Safety Protocol for Station Operations", Type: TypePolicy, Relevance: relevance(0.82), Preview: "Summary: New guidelines for emergency..."},
		{ID: "DOC-0998", Title: "October Board Meeting Minutes", Type: TypeMinutes, Relevance: relevance(0.75), Preview: "Summary: Key decisions on budget allocation..."},
	}
}

// TypeDistribution counts records per type in first-seen order.
func TypeDistribution(records []DocumentRecord) Series {
	index := make(map[DocumentType]int, len(records))
	var out Series
	for _, r := range records {
		i, ok := index[r.Type]
		if !ok {
			index[r.Type] = len(out)
			out = append(out, Count{Label: string(r.Type)})
			i = len(out) - 1
		}
		out[i].Value++
	}
	return out
}

// MonthlyUploads returns upload counts for Jan through Oct, each drawn from
// src in [150, 300). A nil src uses the global generator.
func MonthlyUploads(src IntSource) Series {
	if src == nil {
		src = globalSource{}
	}
	out := make(Series, 0, len(uploadMonths))
	for _, month := range uploadMonths {
		out = append(out, Count{
			Label: month,
			Value: monthlyUploadsMin + src.IntN(monthlyUploadsMax-monthlyUploadsMin),
		})
	}
	return out
}

// StatusDistribution returns the document count per status.
func StatusDistribution() Series {
	return Series{
		{Label: string(StatusApproved), Value: 500},
		{Label: string(StatusPendingReview), Value: 120},
		{Label: string(StatusDraft), Value: 80},
		{Label: string(StatusArchived), Value: 400},
		{Label: string(StatusRejected), Value: 20},
	}
}

// TopKeywords returns the five most searched keywords in ascending count
// order, ready for a horizontal bar chart.
func TopKeywords() Series {
	return Series{
		{Label: "Daily Operations", Value: 75},
		{Label: "Financial Report Q3", Value: 80},
		{Label: "Vendor Contract", Value: 90},
		{Label: "Safety Audit", Value: 120},
		{Label: "Metro Line Expansion", Value: 150},
	}
}

// NewSeededSource returns a deterministic source for tests and the render
// command's --seed flag.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func relevance(v float64) *float64 { return &v }
