package state

import "testing"

func TestNavigation_StartsAtHome(t *testing.T) {
	var nav Navigation
	if got := nav.Active(); got != Home {
		t.Fatalf("Active() = %v, want Home", got)
	}
}

func TestNavigation_ProgrammaticNavigationPersists(t *testing.T) {
	var nav Navigation
	nav.Navigate(Dashboard)
	if !nav.Navigate(Upload) {
		t.Fatalf("Navigate(Upload) = false, want true")
	}
	for i := 0; i < 3; i++ {
		if got := nav.Active(); got != Upload {
			t.Fatalf("Active() = %v, want Upload", got)
		}
	}
	nav.Navigate(Search)
	if got := nav.Active(); got != Search {
		t.Fatalf("Active() = %v, want Search", got)
	}
}

func TestNavigation_RejectsInvalidSection(t *testing.T) {
	var nav Navigation
	nav.Navigate(Analytics)
	if nav.Navigate(Section(42)) {
		t.Fatalf("Navigate(42) = true, want false")
	}
	if got := nav.Active(); got != Analytics {
		t.Fatalf("Active() = %v, want Analytics", got)
	}
}

func TestNavigation_VisitsCountReselection(t *testing.T) {
	var nav Navigation
	nav.Navigate(Search)
	nav.Navigate(Search)
	if got := nav.Visits(); got != 2 {
		t.Fatalf("Visits() = %d, want 2", got)
	}
}

func TestNavigation_NextPrevWrap(t *testing.T) {
	var nav Navigation
	if got := nav.Prev(); got != About {
		t.Fatalf("Prev() from Home = %v, want About", got)
	}
	if got := nav.Next(); got != Home {
		t.Fatalf("Next() from About = %v, want Home", got)
	}
	if got := nav.Next(); got != Dashboard {
		t.Fatalf("Next() from Home = %v, want Dashboard", got)
	}
}

func TestSections_OrderAndNames(t *testing.T) {
	want := []string{"Home", "Dashboard", "Upload", "Search", "Analytics", "About"}
	got := Sections()
	if len(got) != len(want) {
		t.Fatalf("Sections() returned %d sections, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.String() != want[i] {
			t.Fatalf("Sections()[%d] = %q, want %q", i, s.String(), want[i])
		}
		if s.Hotkey() != string(rune('1'+i)) {
			t.Fatalf("%v.Hotkey() = %q, want %q", s, s.Hotkey(), string(rune('1'+i)))
		}
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		in      string
		want    Section
		wantErr bool
	}{
		{in: "home", want: Home},
		{in: " Analytics ", want: Analytics},
		{in: "UPLOAD", want: Upload},
		{in: "settings", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSection(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSection(%q) returned nil error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSection(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSection_StringInvalid(t *testing.T) {
	if got := Section(-1).String(); got != "Section(-1)" {
		t.Fatalf("String() = %q, want Section(-1)", got)
	}
}

func TestSection_TextRoundTrip(t *testing.T) {
	text, err := Analytics.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText returned error: %v", err)
	}
	var s Section
	if err := s.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if s != Analytics {
		t.Fatalf("round trip = %v, want Analytics", s)
	}
	if _, err := Section(9).MarshalText(); err == nil {
		t.Fatalf("MarshalText(9) returned nil error")
	}
}
