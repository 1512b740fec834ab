package fixtures

import (
	"testing"
)

type fixedSource struct {
	values []int
	calls  int
}

func (f *fixedSource) IntN(n int) int {
	v := f.values[f.calls%len(f.values)] % n
	f.calls++
	return v
}

func TestMonthlyUploads_UsesInjectedSource(t *testing.T) {
	src := &fixedSource{values: []int{0, 149, 10}}
	got := MonthlyUploads(src)

	if len(got) != 10 {
		t.Fatalf("MonthlyUploads returned %d months, want 10", len(got))
	}
	if got[0].Label != "Jan" || got[9].Label != "Oct" {
		t.Fatalf("months = %q..%q, want Jan..Oct", got[0].Label, got[9].Label)
	}
	if got[0].Value != 150 || got[1].Value != 299 || got[2].Value != 160 {
		t.Fatalf("values = %d,%d,%d, want 150,299,160", got[0].Value, got[1].Value, got[2].Value)
	}
	if src.calls != 10 {
		t.Fatalf("source called %d times, want 10", src.calls)
	}
}

func TestMonthlyUploads_StaysInRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		for _, c := range MonthlyUploads(NewSeededSource(seed)) {
			if c.Value < 150 || c.Value >= 300 {
				t.Fatalf("seed %d: %s = %d, want [150, 300)", seed, c.Label, c.Value)
			}
		}
	}
}

func TestMonthlyUploads_SeedIsDeterministic(t *testing.T) {
	a := MonthlyUploads(NewSeededSource(7))
	b := MonthlyUploads(NewSeededSource(7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("month %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTypeDistribution_FirstSeenOrder(t *testing.T) {
	records := []DocumentRecord{
		{Type: TypeInvoice}, {Type: TypeReport}, {Type: TypeInvoice}, {Type: TypeLegal},
	}
	got := TypeDistribution(records)
	want := Series{{"Invoice", 2}, {"Report", 1}, {"Legal", 1}}
	if len(got) != len(want) {
		t.Fatalf("TypeDistribution = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TypeDistribution[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTypeDistribution_ActivityFixture(t *testing.T) {
	got := TypeDistribution(ActivityRecords())
	if got.Total() != len(ActivityRecords()) {
		t.Fatalf("Total() = %d, want %d", got.Total(), len(ActivityRecords()))
	}
	if len(got) != 5 {
		t.Fatalf("distinct types = %d, want 5", len(got))
	}
}

func TestSearchResults_DescendingRelevance(t *testing.T) {
	results := SearchResults()
	for i, r := range results {
		if r.Relevance == nil {
			t.Fatalf("result %s has no relevance", r.ID)
		}
		if i > 0 && *results[i-1].Relevance < *r.Relevance {
			t.Fatalf("results not in descending relevance at %d", i)
		}
	}
	if got := results[0].Link(); got != "View DOC-1023" {
		t.Fatalf("Link() = %q, want %q", got, "View DOC-1023")
	}
}

func TestTopKeywords_Ascending(t *testing.T) {
	kw := TopKeywords()
	if len(kw) != 5 {
		t.Fatalf("TopKeywords returned %d, want 5", len(kw))
	}
	for i := 1; i < len(kw); i++ {
		if kw[i-1].Value > kw[i].Value {
			t.Fatalf("TopKeywords not ascending at %d: %v", i, kw)
		}
	}
	if kw[len(kw)-1].Label != "Metro Line Expansion" {
		t.Fatalf("top keyword = %q, want Metro Line Expansion", kw[len(kw)-1].Label)
	}
}

func TestStatusDistribution_Total(t *testing.T) {
	if got := StatusDistribution().Total(); got != 1120 {
		t.Fatalf("Total() = %d, want 1120", got)
	}
}

func TestParseDocumentType(t *testing.T) {
	if got, ok := ParseDocumentType(" invoice "); !ok || got != TypeInvoice {
		t.Fatalf("ParseDocumentType(invoice) = %q,%v, want Invoice,true", got, ok)
	}
	if got, ok := ParseDocumentType("proposal"); !ok || got != TypeProposal {
		t.Fatalf("ParseDocumentType(proposal) = %q,%v, want Proposal,true", got, ok)
	}
	if _, ok := ParseDocumentType("memo"); ok {
		t.Fatalf("ParseDocumentType(memo) ok = true, want false")
	}
}

func TestSelectableTypes_ExcludesProposal(t *testing.T) {
	for _, typ := range SelectableTypes() {
		if typ == TypeProposal {
			t.Fatalf("SelectableTypes contains Proposal")
		}
	}
	if len(SelectableTypes()) != 7 {
		t.Fatalf("SelectableTypes returned %d, want 7", len(SelectableTypes()))
	}
}
