// Package keys names the key strings Bubble Tea v2 reports and maps them to
// sheet actions.
//
// Named keys are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String() so
// they always match the runtime values.
package keys

import tea "charm.land/bubbletea/v2"

var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"

	Enter  = tea.KeyPressMsg{Code: tea.KeyEnter}.String()  // "enter"
	Space  = tea.KeyPressMsg{Code: tea.KeySpace}.String()  // "space"
	Escape = tea.KeyPressMsg{Code: tea.KeyEscape}.String() // "esc"

	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
)

// Action is what a key does to the sheet.
type Action int

const (
	ActionNone   Action = iota
	ActionOpen          // one snap point more open
	ActionClose         // one snap point less open, hidden after the last
	ActionExpand        // most open snap point
	ActionHide          // hidden position
	ActionToggle        // hide when showing, open one step when hidden
	ActionScroll        // scroll the sheet content
)

var sheetActions = map[string]Action{
	"k":    ActionOpen,
	Up:     ActionOpen,
	"j":    ActionClose,
	Down:   ActionClose,
	"g":    ActionExpand,
	"h":    ActionHide,
	Space:  ActionToggle,
	PgUp:   ActionScroll,
	PgDown: ActionScroll,
	Home:   ActionScroll,
	End:    ActionScroll,
}

// SheetAction returns the sheet action bound to key, or ActionNone.
func SheetAction(key string) Action {
	return sheetActions[key]
}

// SnapIndex maps "1".."9" to snap indices 0..8.
func SnapIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
