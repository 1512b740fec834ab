package fixtures

import (
	"strings"
	"time"
)

// DocumentType categorizes a document.
type DocumentType string

const (
	TypeReport   DocumentType = "Report"
	TypeInvoice  DocumentType = "Invoice"
	TypeDrawing  DocumentType = "Drawing"
	TypePolicy   DocumentType = "Policy"
	TypeMinutes  DocumentType = "Minutes"
	TypeLegal    DocumentType = "Legal"
	TypeOther    DocumentType = "Other"
	TypeProposal DocumentType = "Proposal"
)

// SelectableTypes lists the types offered in the upload selector and the
// search filter, in display order. Proposal only appears in sample activity.
func SelectableTypes() []DocumentType {
	return []DocumentType{TypeReport, TypeInvoice, TypeDrawing, TypePolicy, TypeMinutes, TypeLegal, TypeOther}
}

// ParseDocumentType resolves a type by name, case-insensitively. Unknown names
// return false.
func ParseDocumentType(name string) (DocumentType, bool) {
	trimmed := strings.TrimSpace(name)
	for _, t := range append(SelectableTypes(), TypeProposal) {
		if strings.EqualFold(trimmed, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Status is a document's lifecycle label.
type Status string

const (
	StatusApproved       Status = "Approved"
	StatusPendingPayment Status = "Pending Payment"
	StatusPendingReview  Status = "Pending Review"
	StatusUnderReview    Status = "Under Review"
	StatusFinalized      Status = "Finalized"
	StatusDraft          Status = "Draft"
	StatusArchived       Status = "Archived"
	StatusRejected       Status = "Rejected"
)

// DocumentRecord is one row of sample data. Relevance is set only for search
// results.
type DocumentRecord struct {
	ID           string       `json:"id" yaml:"id"`
	Title        string       `json:"title" yaml:"title"`
	Type         DocumentType `json:"type" yaml:"type"`
	LastModified time.Time    `json:"last_modified,omitzero" yaml:"last_modified,omitempty"`
	Status       Status       `json:"status,omitempty" yaml:"status,omitempty"`
	Relevance    *float64     `json:"relevance,omitempty" yaml:"relevance,omitempty"`
	Preview      string       `json:"preview,omitempty" yaml:"preview,omitempty"`
}

// Link returns the label of the record's view button.
func (r DocumentRecord) Link() string {
	return "View " + r.ID
}

// Metric is a headline number on the dashboard.
type Metric struct {
	Label string
	Value int
	Help  string
}

// Count is a labelled value for a chart series.
type Count struct {
	Label string
	Value int
}

// Series is an ordered set of counts.
type Series []Count

// Total sums every value in the series.
func (s Series) Total() int {
	total := 0
	for _, c := range s {
		total += c.Value
	}
	return total
}
