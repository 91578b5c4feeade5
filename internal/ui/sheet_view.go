package ui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/roamly/roamly/internal/logger"
	"github.com/roamly/roamly/internal/sheet"
)

// SheetFrameMsg drives one animation frame. Frames from a loop that has since
// been stopped carry a stale generation and are dropped.
type SheetFrameMsg struct {
	SheetID    string
	Generation int
}

// SheetView hosts a sheet in the terminal: it maps mouse rows to pointer
// events, runs the frame loop while the sheet settles, and renders the
// handle and content at the live position.
//
// Rows are relative to the top of the body (the area between header and
// footer), which is also the sheet's viewport.
type SheetView struct {
	sheet   *sheet.Sheet
	content ContentRenderer
	fps     int

	width  int
	height int

	generation int
	ticking    bool
	pressed    bool // Left button went down on the sheet

	log *slog.Logger
}

// NewSheetView wraps s. fps is the frame rate of the settle loop.
func NewSheetView(s *sheet.Sheet, content ContentRenderer, fps int) *SheetView {
	if fps <= 0 {
		fps = sheet.DefaultFPS
	}
	return &SheetView{
		sheet:   s,
		content: content,
		fps:     fps,
		log:     logger.WithSheet(s.ID()),
	}
}

// Sheet returns the hosted engine.
func (v *SheetView) Sheet() *sheet.Sheet { return v.sheet }

// SetSize sets the body size the sheet is drawn into.
func (v *SheetView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Top is the body row of the handle at the live position.
func (v *SheetView) Top() int {
	return int(math.Round(v.sheet.LivePosition()))
}

// Contains reports whether body row y is on the sheet.
func (v *SheetView) Contains(y int) bool {
	return y >= v.Top() && y < v.height
}

// Pressed reports whether a pointer gesture started on the sheet is open.
func (v *SheetView) Pressed() bool { return v.pressed }

// Ticking reports whether a frame loop is running.
func (v *SheetView) Ticking() bool { return v.ticking }

// Generation is the current frame loop generation.
func (v *SheetView) Generation() int { return v.generation }

// Animate starts the frame loop if the sheet needs frames and no loop is
// running. Call it after anything that may have started a settle.
func (v *SheetView) Animate() tea.Cmd {
	if v.ticking || !v.sheet.Animating() {
		return nil
	}
	v.generation++
	v.ticking = true
	v.log.Debug("Frame loop started", "generation", v.generation)
	return v.tick()
}

// Stop abandons the running frame loop; its pending frame will be ignored.
func (v *SheetView) Stop() {
	if v.ticking {
		v.log.Debug("Frame loop stopped", "generation", v.generation)
	}
	v.generation++
	v.ticking = false
}

func (v *SheetView) tick() tea.Cmd {
	id, gen := v.sheet.ID(), v.generation
	return tea.Tick(time.Second/time.Duration(v.fps), func(time.Time) tea.Msg {
		return SheetFrameMsg{SheetID: id, Generation: gen}
	})
}

// Update handles frames and pointer input. Mouse coordinates must already be
// relative to the body.
func (v *SheetView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SheetFrameMsg:
		if msg.SheetID != v.sheet.ID() || msg.Generation != v.generation || !v.ticking {
			return nil
		}
		if v.sheet.Frame() {
			return v.tick()
		}
		v.ticking = false
		return nil

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || !v.Contains(msg.Y) {
			return nil
		}
		v.pressed = true
		v.sheet.PointerDown(float64(msg.Y))
		return nil

	case tea.MouseMotionMsg:
		if !v.pressed {
			return nil
		}
		v.sheet.PointerMove(float64(msg.Y))
		return nil

	case tea.MouseReleaseMsg:
		if !v.pressed {
			return nil
		}
		v.pressed = false
		v.sheet.PointerUp(float64(msg.Y))
		return v.Animate()

	case tea.MouseWheelMsg:
		if v.content == nil || !v.Contains(msg.Y) {
			return nil
		}
		return v.content.Update(msg)

	case tea.KeyPressMsg:
		if v.content == nil {
			return nil
		}
		return v.content.Update(msg)
	}
	return nil
}

// CancelPointer drops an open gesture, e.g. when the mouse leaves the body.
func (v *SheetView) CancelPointer() tea.Cmd {
	if !v.pressed {
		return nil
	}
	v.pressed = false
	v.sheet.PointerCancel()
	return v.Animate()
}

// ContentRows is the number of content rows shown below the handle.
func (v *SheetView) ContentRows() int {
	rows := v.height - v.Top() - HandleRows
	h := int(math.Round(v.sheet.ContentHeight())) - HandleRows
	if h < rows {
		rows = h
	}
	if rows < 0 {
		return 0
	}
	return rows
}

// View renders the sheet from its handle down to the bottom of the body.
// The result is View rows tall, with Top() rows of the body above it.
func (v *SheetView) View() string {
	rows := v.height - v.Top()
	if rows <= 0 || v.width <= 0 {
		return ""
	}

	lines := make([]string, 0, rows)
	lines = append(lines, v.renderHandle())

	contentRows := v.ContentRows()
	if contentRows > 0 && v.content != nil {
		body := v.content.Render(v.width, contentRows)
		for _, l := range strings.Split(body, "\n") {
			if len(lines) > contentRows {
				break
			}
			lines = append(lines, ansi.Truncate(l, v.width, ""))
		}
	}

	blank := SheetStyle.Render(strings.Repeat(" ", v.width))
	for len(lines) < rows {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (v *SheetView) renderHandle() string {
	grabber := "━━━━━━"
	label := SnapLabel(v.sheet)

	gw := runewidth.StringWidth(grabber)
	left := (v.width - gw) / 2
	if left < 0 {
		left = 0
	}
	right := v.width - left - gw
	labelText := ""
	if right > runewidth.StringWidth(label)+2 {
		labelText = runewidth.FillLeft(label+" ", right)
	} else if right > 0 {
		labelText = strings.Repeat(" ", right)
	}

	line := SheetHandleStyle.Render(strings.Repeat(" ", left)) +
		SheetGrabberStyle.Render(grabber) +
		SheetLabelStyle.Render(labelText)
	return ansi.Truncate(line, v.width, "")
}

// SnapLabel describes the committed snap point, e.g. "50%" or "hidden".
func SnapLabel(s *sheet.Sheet) string {
	if s.Hidden() {
		return "hidden"
	}
	f, ok := s.Catalog().Fraction(s.CommittedIndex())
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%d%%", int(math.Round(f*100)))
}

// SnapMeter returns the visible snap count and the committed index for the
// header meter, with -1 when the sheet is hidden.
func SnapMeter(s *sheet.Sheet) (count, index int) {
	if s.Hidden() {
		return s.SnapCount(), -1
	}
	return s.SnapCount(), s.CommittedIndex()
}
