package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/roamly/roamly/internal/content"
	"github.com/roamly/roamly/internal/sheet"
)

const testBodyRows = 20

// newTestSheetView builds a 40x20 view over a sheet resting at 50% (row 10).
// Snap rows are 15, 10 and 2, hidden is 19.
func newTestSheetView(t *testing.T) *SheetView {
	t.Helper()
	opts := sheet.DefaultOptions()
	opts.DefaultIndex = 1
	opts.HandleHeight = 1
	opts.DeadZone = 0.5

	s, err := sheet.New(opts, testBodyRows)
	if err != nil {
		t.Fatalf("sheet.New() error = %v", err)
	}
	t.Cleanup(s.Close)

	v := NewSheetView(s, NewTripContent(content.Trip()), opts.FPS)
	v.SetSize(40, testBodyRows)
	return v
}

// runLoop feeds frames while the view keeps asking for them.
func runLoop(t *testing.T, v *SheetView) int {
	t.Helper()
	frames := 0
	for v.Ticking() {
		v.Update(SheetFrameMsg{SheetID: v.Sheet().ID(), Generation: v.Generation()})
		frames++
		if frames > 2000 {
			t.Fatal("frame loop did not settle")
		}
	}
	return frames
}

func leftClick(y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{Y: y, Button: tea.MouseLeft}
}

func TestSheetView_TopAndContains(t *testing.T) {
	v := newTestSheetView(t)

	if v.Top() != 10 {
		t.Fatalf("Top() = %d, want 10", v.Top())
	}

	tests := []struct {
		y    int
		want bool
	}{
		{9, false},
		{10, true},
		{19, true},
		{20, false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.y); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestSheetView_DragAndSettle(t *testing.T) {
	v := newTestSheetView(t)

	v.Update(leftClick(10))
	if !v.Pressed() {
		t.Fatal("expected press on the sheet to be tracked")
	}
	v.Update(tea.MouseMotionMsg{Y: 4, Button: tea.MouseLeft})
	if v.Sheet().State() != sheet.StateDragging {
		t.Fatalf("State() = %v, want Dragging", v.Sheet().State())
	}
	if v.Top() != 4 {
		t.Errorf("Top() during drag = %d, want 4", v.Top())
	}

	cmd := v.Update(tea.MouseReleaseMsg{Y: 4, Button: tea.MouseLeft})
	if cmd == nil {
		t.Fatal("release should start the frame loop")
	}
	if v.Sheet().CommittedIndex() != 2 {
		t.Errorf("CommittedIndex() = %d, want 2", v.Sheet().CommittedIndex())
	}

	runLoop(t, v)
	if v.Sheet().State() != sheet.StateIdle {
		t.Errorf("State() = %v, want Idle", v.Sheet().State())
	}
	if v.Top() != 2 {
		t.Errorf("Top() after settle = %d, want 2", v.Top())
	}
}

func TestSheetView_ClickOutsideIgnored(t *testing.T) {
	v := newTestSheetView(t)

	v.Update(leftClick(3))
	if v.Pressed() {
		t.Error("click above the sheet should not start a gesture")
	}

	v.Update(tea.MouseMotionMsg{Y: 8})
	v.Update(tea.MouseReleaseMsg{Y: 8})
	if v.Sheet().State() != sheet.StateIdle {
		t.Errorf("State() = %v, want Idle", v.Sheet().State())
	}
	if v.Top() != 10 {
		t.Errorf("Top() = %d, want 10", v.Top())
	}
}

func TestSheetView_RightClickIgnored(t *testing.T) {
	v := newTestSheetView(t)

	v.Update(tea.MouseClickMsg{Y: 12, Button: tea.MouseRight})
	if v.Pressed() {
		t.Error("right click should not start a gesture")
	}
}

func TestSheetView_CancelPointer(t *testing.T) {
	v := newTestSheetView(t)

	v.Update(leftClick(10))
	v.Update(tea.MouseMotionMsg{Y: 5})
	v.CancelPointer()

	if v.Pressed() {
		t.Error("CancelPointer should clear the press")
	}
	runLoop(t, v)
	if v.Top() != 10 {
		t.Errorf("Top() = %d, want 10", v.Top())
	}
	if v.Sheet().CommittedIndex() != 1 {
		t.Errorf("CommittedIndex() = %d, want 1", v.Sheet().CommittedIndex())
	}
}

func TestSheetView_Animate(t *testing.T) {
	v := newTestSheetView(t)

	if cmd := v.Animate(); cmd != nil {
		t.Error("Animate() on an idle sheet should return nil")
	}

	if err := v.Sheet().SnapTo(0); err != nil {
		t.Fatalf("SnapTo() error = %v", err)
	}
	if cmd := v.Animate(); cmd == nil {
		t.Fatal("Animate() should start a loop while settling")
	}
	gen := v.Generation()
	if cmd := v.Animate(); cmd != nil {
		t.Error("Animate() should not start a second loop")
	}
	if v.Generation() != gen {
		t.Errorf("Generation() = %d, want %d", v.Generation(), gen)
	}
}

func TestSheetView_StaleFramesDropped(t *testing.T) {
	v := newTestSheetView(t)

	if err := v.Sheet().SnapTo(0); err != nil {
		t.Fatalf("SnapTo() error = %v", err)
	}
	v.Animate()
	stale := SheetFrameMsg{SheetID: v.Sheet().ID(), Generation: v.Generation()}
	v.Stop()

	before := v.Sheet().LivePosition()
	if cmd := v.Update(stale); cmd != nil {
		t.Error("stale frame should not schedule another")
	}
	if v.Sheet().LivePosition() != before {
		t.Error("stale frame should not advance the sheet")
	}

	other := SheetFrameMsg{SheetID: "other", Generation: v.Generation()}
	if cmd := v.Update(other); cmd != nil {
		t.Error("frame for another sheet should be ignored")
	}

	// A new loop picks the settle back up.
	if v.Animate() == nil {
		t.Fatal("Animate() should restart the loop")
	}
	runLoop(t, v)
	if v.Top() != 15 {
		t.Errorf("Top() = %d, want 15", v.Top())
	}
}

func TestSheetView_View(t *testing.T) {
	v := newTestSheetView(t)

	view := v.View()
	lines := strings.Split(view, "\n")
	if len(lines) != testBodyRows-v.Top() {
		t.Fatalf("View() has %d lines, want %d", len(lines), testBodyRows-v.Top())
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 40 {
			t.Errorf("line %d is %d wide, want <= 40", i, w)
		}
	}

	handle := ansi.Strip(lines[0])
	if !strings.Contains(handle, "━") {
		t.Errorf("first line should be the handle, got %q", handle)
	}
	if !strings.Contains(handle, "50%") {
		t.Errorf("handle should carry the snap label, got %q", handle)
	}
	if !strings.Contains(ansi.Strip(view), "Today's itinerary") {
		t.Error("content should be visible below the handle")
	}
}

func TestSheetView_ContentRows(t *testing.T) {
	v := newTestSheetView(t)

	if got := v.ContentRows(); got != 9 {
		t.Errorf("ContentRows() at 50%% = %d, want 9", got)
	}

	if err := v.Sheet().Hide(); err != nil {
		t.Fatalf("Hide() error = %v", err)
	}
	v.Animate()
	runLoop(t, v)
	if got := v.ContentRows(); got != 0 {
		t.Errorf("ContentRows() hidden = %d, want 0", got)
	}
	if lines := strings.Split(v.View(), "\n"); len(lines) != 1 {
		t.Errorf("hidden sheet should render only the handle, got %d lines", len(lines))
	}
}

func TestSnapLabel(t *testing.T) {
	v := newTestSheetView(t)
	s := v.Sheet()

	tests := []struct {
		index     int
		want      string
		wantMeter int
	}{
		{0, "25%", 0},
		{1, "50%", 1},
		{2, "90%", 2},
		{3, "hidden", -1},
	}
	for _, tt := range tests {
		if err := s.SnapTo(tt.index); err != nil {
			t.Fatalf("SnapTo(%d) error = %v", tt.index, err)
		}
		if got := SnapLabel(s); got != tt.want {
			t.Errorf("SnapLabel() at %d = %q, want %q", tt.index, got, tt.want)
		}
		if count, idx := SnapMeter(s); count != 3 || idx != tt.wantMeter {
			t.Errorf("SnapMeter() at %d = %d, %d, want 3, %d", tt.index, count, idx, tt.wantMeter)
		}
	}
}
