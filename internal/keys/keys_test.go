package keys

import "testing"

// Guards against Bubble Tea changing its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Up, "up"},
		{Down, "down"},
		{Home, "home"},
		{End, "end"},
		{PgUp, "pgup"},
		{PgDown, "pgdown"},
		{Enter, "enter"},
		{Space, "space"},
		{Escape, "esc"},
		{CtrlC, "ctrl+c"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestSheetAction(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"k", ActionOpen},
		{"up", ActionOpen},
		{"j", ActionClose},
		{"down", ActionClose},
		{"g", ActionExpand},
		{"h", ActionHide},
		{"space", ActionToggle},
		{"pgdown", ActionScroll},
		{"home", ActionScroll},
		{"x", ActionNone},
		{"1", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		if got := SheetAction(tt.key); got != tt.want {
			t.Errorf("SheetAction(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestSnapIndex(t *testing.T) {
	tests := []struct {
		key    string
		want   int
		wantOK bool
	}{
		{"1", 0, true},
		{"3", 2, true},
		{"9", 8, true},
		{"0", 0, false},
		{"10", 0, false},
		{"a", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := SnapIndex(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SnapIndex(%q) = %d, %v, want %d, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
