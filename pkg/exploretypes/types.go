// Package exploretypes defines the plain data structures the explorer core
// hands to UI layers: classified property rows, member menus grouped by
// defining ancestor, documentation info and history menu options.
package exploretypes

// PropertyRow is one classified property ready for table-style display.
type PropertyRow struct {
	Name  string
	Label string
	Value string
	// Explorable is set when clicking the value should navigate to it.
	Explorable bool
}

// MenuItem is one member offered in the drill-down menu.
type MenuItem struct {
	Name    string
	Type    string
	Privacy string
}

// MenuGroup collects the members contributed by one ancestor kind.
type MenuGroup struct {
	Origin  string
	Members []MenuItem
}

// DocInfo carries the documentation and call signature of the selected
// member for help display and argument-input generation.
type DocInfo struct {
	Name     string
	Doc      string
	Args     []string
	Defaults []string
	Origin   string
}

// HistoryOption is one rendered navigation menu entry.
type HistoryOption struct {
	Label string
	Index int
}
