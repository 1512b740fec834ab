package state

// Navigation holds the single active section. The zero value starts at Home.
type Navigation struct {
	active Section
	visits int
}

// Active returns the section currently displayed.
func (n *Navigation) Active() Section {
	return n.active
}

// Navigate makes to the active section. Invalid sections are ignored and
// reported as false. Re-selecting the active section still counts as a
// visit so its page is re-evaluated.
func (n *Navigation) Navigate(to Section) bool {
	if !to.Valid() {
		return false
	}
	n.active = to
	n.visits++
	return true
}

// Visits counts navigations since startup. The UI compares it to drop results
// of work started before the user left a section.
func (n *Navigation) Visits() int {
	return n.visits
}

// Next moves to the following section in sidebar order, wrapping around.
func (n *Navigation) Next() Section {
	all := Sections()
	n.Navigate(all[(int(n.active)+1)%len(all)])
	return n.active
}

// Prev moves to the preceding section in sidebar order, wrapping around.
func (n *Navigation) Prev() Section {
	all := Sections()
	n.Navigate(all[(int(n.active)-1+len(all))%len(all)])
	return n.active
}
