// Package session implements the explorer session: the state machine owning
// the current value and the exploration history, recomputing classified
// properties and member menus whenever the value changes, and mediating
// value changes coming from property clicks, method calls and history
// navigation.
package session

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"mathscope/internal/history"
	"mathscope/internal/introspect"
	"mathscope/internal/kind"
	"mathscope/internal/logger"
	"mathscope/internal/rules"
	"mathscope/pkg/exploretypes"
)

// Session owns the current explored value and everything derived from it.
// All mutation happens on the caller's goroutine in response to one logical
// event at a time.
type Session struct {
	ID string

	table *rules.Table
	hist  *history.History

	value      kind.Value
	doNotTrack bool

	properties []*introspect.Member
	members    []*introspect.Member
	selected   *introspect.Member
}

// New opens a session on value. inputLog, when given, is scanned for the
// variable name the explorer was invoked with; the guess feeds the first
// history entry's display name.
func New(value kind.Value, table *rules.Table, inputLog []string) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		table: table,
		hist:  history.New(value, history.GuessInitialName(inputLog)),
		value: value,
	}
	s.compute()
	logger.Debug("Session opened", "session", s.ID, "value", value.Repr())
	return s
}

// Value returns the currently explored value.
func (s *Session) Value() kind.Value { return s.value }

// History exposes the session's exploration history.
func (s *Session) History() *history.History { return s.hist }

// SetValue makes v the current value as a new navigation step: the history
// records it (cutting any forward branch) and all derived state is
// recomputed. Setting the identical value is a no-op.
func (s *Session) SetValue(v kind.Value) {
	if s.doNotTrack {
		return
	}
	if v == s.value {
		return
	}
	s.doNotTrack = true
	defer func() { s.doNotTrack = false }()

	s.hist.Push(v)
	s.value = v
	s.compute()
}

// SelectHistory moves exploration to an existing history entry. This is a
// read of the history: nothing is pushed and the forward branch survives.
func (s *Session) SelectHistory(i int) error {
	if err := s.hist.Select(i); err != nil {
		return err
	}
	s.doNotTrack = true
	defer func() { s.doNotTrack = false }()

	s.value = s.hist.Current()
	s.compute()
	return nil
}

// Back discards the most recent history entry and returns to the previous
// value. Surfaces history.ErrNoMoreHistory at the guaranteed minimum.
func (s *Session) Back() error {
	if err := s.hist.Pop(1); err != nil {
		return err
	}
	s.doNotTrack = true
	defer func() { s.doNotTrack = false }()

	s.value = s.hist.Current()
	s.compute()
	return nil
}

// compute refreshes the classified properties and member records for the
// current value.
func (s *Session) compute() {
	s.properties = introspect.Properties(s.value, s.table)
	s.members = introspect.Members(s.value, s.table, false)
	s.selected = nil
}

// Properties returns the classified property rows for the current value,
// with each property's value computed by a zero-argument call when the
// member is callable. A property whose computation fails is omitted.
func (s *Session) Properties() []exploretypes.PropertyRow {
	rows := make([]exploretypes.PropertyRow, 0, len(s.properties))
	for _, m := range s.properties {
		value, ok := computeDisplayed(m.Member())
		if !ok {
			logger.Debug("Omitting property", "session", s.ID, "name", m.Name)
			continue
		}
		rows = append(rows, exploretypes.PropertyRow{
			Name:       m.Name,
			Label:      m.PropLabel(),
			Value:      value.Repr(),
			Explorable: true,
		})
	}
	return rows
}

// PropertyValue resolves a property click: it computes the property's value
// and navigates to it.
func (s *Session) PropertyValue(name string) (kind.Value, error) {
	for _, m := range s.properties {
		if m.Name != name {
			continue
		}
		value, ok := computeDisplayed(m.Member())
		if !ok {
			return nil, fmt.Errorf("property %s cannot be computed", name)
		}
		s.SetValue(value)
		return value, nil
	}
	return nil, fmt.Errorf("no property %s", name)
}

// MemberGroups returns the drill-down menu: one group per ancestor kind that
// contributes at least one member, groups ordered by the ancestor sequence.
func (s *Session) MemberGroups() []exploretypes.MenuGroup {
	grouped := make(map[*kind.Kind][]exploretypes.MenuItem)
	for _, m := range s.members {
		origin := m.Origin()
		grouped[origin] = append(grouped[origin], exploretypes.MenuItem{
			Name:    m.Name,
			Type:    string(m.MemberType()),
			Privacy: string(m.Privacy()),
		})
	}

	ancestors, err := kind.MRO(kind.Of(s.value))
	if err != nil {
		ancestors = []*kind.Kind{kind.Of(s.value)}
	}
	var groups []exploretypes.MenuGroup
	for _, c := range ancestors {
		items, ok := grouped[c]
		if !ok {
			continue
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		groups = append(groups, exploretypes.MenuGroup{
			Origin:  introspect.ExtractKindName(c, false),
			Members: items,
		})
		delete(grouped, c)
	}
	// Origins outside the ancestor walk should not happen; keep them anyway.
	for c, items := range grouped {
		groups = append(groups, exploretypes.MenuGroup{
			Origin:  introspect.ExtractKindName(c, false),
			Members: items,
		})
	}
	return groups
}

// SelectMember marks the named member as selected for help display.
func (s *Session) SelectMember(name string) (*exploretypes.DocInfo, error) {
	for _, m := range s.members {
		if m.Name != name {
			continue
		}
		s.selected = m
		if err := m.ComputeDoc(nil); err != nil {
			return nil, err
		}
		if err := m.ComputeArgspec(nil); err != nil {
			return nil, err
		}
		info := &exploretypes.DocInfo{
			Name:     m.Name,
			Doc:      m.Doc(),
			Args:     m.Args(),
			Defaults: m.Defaults(),
		}
		if m.Origin() != nil {
			info.Origin = introspect.ExtractKindName(m.Origin(), false)
		}
		return info, nil
	}
	return nil, fmt.Errorf("no member %s", name)
}

// HistoryOptions returns the navigation menu for the history.
func (s *Session) HistoryOptions() []exploretypes.HistoryOption {
	options := s.hist.MenuOptions()
	result := make([]exploretypes.HistoryOption, len(options))
	for i, opt := range options {
		result[i] = exploretypes.HistoryOption{Label: opt.Label, Index: opt.Index}
	}
	return result
}

// computeDisplayed produces the value shown for a property: callables are
// invoked with no arguments, plain values pass through.
func computeDisplayed(member kind.Value) (kind.Value, bool) {
	if member == nil {
		return nil, false
	}
	callable, ok := member.(kind.Callable)
	if !ok {
		return member, true
	}
	result, err := callable.Call()
	if err != nil {
		return nil, false
	}
	return result, true
}
