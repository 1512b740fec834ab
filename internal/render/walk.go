package render

// Walk visits every node depth-first, children after their parent. Returning
// false from fn skips the node's children.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if fn(n) && len(n.Children) > 0 {
			Walk(n.Children, fn)
		}
	}
}

// Find returns the first node matching pred.
func Find(nodes []Node, pred func(Node) bool) (Node, bool) {
	var found Node
	ok := false
	Walk(nodes, func(n Node) bool {
		if ok {
			return false
		}
		if pred(n) {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Buttons returns every button node in document order.
func Buttons(nodes []Node) []Node {
	var out []Node
	Walk(nodes, func(n Node) bool {
		if n.Kind == KindButton {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Callouts returns the callouts with the given tone. ToneNone matches all.
func Callouts(nodes []Node, tone Tone) []Node {
	var out []Node
	Walk(nodes, func(n Node) bool {
		if n.Kind == KindCallout && (tone == ToneNone || n.Tone == tone) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// MaxValue returns the largest point value, or zero for an empty chart.
func (c Chart) MaxValue() float64 {
	maxV := 0.0
	for _, p := range c.Points {
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	return maxV
}

// Total sums the point values.
func (c Chart) Total() float64 {
	total := 0.0
	for _, p := range c.Points {
		total += p.Value
	}
	return total
}
