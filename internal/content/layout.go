package content

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LineKind tells the renderer how to style a laid-out line.
type LineKind int

const (
	LineHeading LineKind = iota
	LineTitle
	LineDetail
	LineBlank
)

// Line is one row of laid-out content. Time is set only on the first row of
// an entry that has one.
type Line struct {
	Kind LineKind
	Time string
	Text string
}

// timeColumn is the width reserved for "HH:MM" plus a gap.
const timeColumn = 7

// Layout flows sections into rows no wider than width cells. Details are
// word-wrapped under their title.
func Layout(sections []Section, width int) []Line {
	if width < timeColumn+4 {
		width = timeColumn + 4
	}

	var lines []Line
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, Line{Kind: LineBlank})
		}
		lines = append(lines, Line{Kind: LineHeading, Text: runewidth.Truncate(s.Title, width, "…")})

		for _, e := range s.Entries {
			textWidth := width - timeColumn
			lines = append(lines, Line{
				Kind: LineTitle,
				Time: e.Time,
				Text: runewidth.Truncate(e.Title, textWidth, "…"),
			})
			for _, row := range Wrap(e.Detail, textWidth) {
				lines = append(lines, Line{Kind: LineDetail, Text: row})
			}
		}
	}
	return lines
}

// Wrap breaks s into rows of at most width cells, splitting on spaces.
// A single word wider than width is cut.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var rows []string
	var cur strings.Builder
	curWidth := 0

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "")
			w = runewidth.StringWidth(word)
		}
		switch {
		case curWidth == 0:
			cur.WriteString(word)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + w
		default:
			rows = append(rows, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curWidth = w
		}
	}
	if curWidth > 0 {
		rows = append(rows, cur.String())
	}
	return rows
}

// PadTime right-pads a time label to the time column.
func PadTime(t string) string {
	return runewidth.FillRight(t, timeColumn)
}
