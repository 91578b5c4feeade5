package ui

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Layer is a rendered block placed at row Y of the composed view.
// Later layers are drawn over earlier ones.
type Layer struct {
	Content string
	Y       int
	Height  int
}

// Compose stacks layers into a width x height view using a cell buffer, so a
// layer only covers the rows it occupies.
func Compose(width, height int, layers ...Layer) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	scr := uv.NewScreenBuffer(width, height)
	for _, l := range layers {
		if l.Content == "" || l.Height <= 0 || l.Y >= height {
			continue
		}
		y, h := l.Y, l.Height
		if y < 0 {
			h += y
			y = 0
		}
		if y+h > height {
			h = height - y
		}
		if h <= 0 {
			continue
		}
		uv.NewStyledString(l.Content).Draw(scr, uv.Rect(0, y, width, h))
	}
	return scr.Render()
}
