package sheet

// ContentHeight maps a live position to the height of content the sheet
// shows there. It interpolates linearly between the visible snap points of c
// and clamps live into their range; the hidden position plays no part.
// The result decreases as live increases.
func ContentHeight(c Catalog, live float64) float64 {
	n := len(c.fractions)
	if n == 0 {
		return 0
	}

	// positions[0..n-1] descend while heights ascend.
	first, last := c.positions[0], c.positions[n-1]
	if live >= first {
		return c.usable * c.fractions[0]
	}
	if live <= last {
		return c.usable * c.fractions[n-1]
	}

	for i := 0; i < n-1; i++ {
		hi, lo := c.positions[i], c.positions[i+1]
		if live > hi || live < lo {
			continue
		}
		t := (hi - live) / (hi - lo)
		h0 := c.usable * c.fractions[i]
		h1 := c.usable * c.fractions[i+1]
		return h0 + t*(h1-h0)
	}
	return c.usable * c.fractions[n-1]
}
