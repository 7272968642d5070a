package introspect

import (
	"mathscope/internal/kind"
	"mathscope/internal/logger"
	"mathscope/internal/rules"
)

// Members returns fully computed member records for a kind or instance,
// skipping abstract and deprecated members and, unless includePrivate is
// set, members with any privacy tag. Per-member failures degrade to
// omission; the listing itself never fails.
func Members(container kind.Value, table *rules.Table, includePrivate bool) []*Member {
	var members []*Member
	for _, nv := range EnumerateMembers(container) {
		if IsAbstract(nv.Value) || IsDeprecated(nv.Value) {
			continue
		}
		m := NewMember(nv.Name, container)
		m.member = nv.Value
		m.hasMember = true
		if err := m.ComputeMemberType(nil); err != nil {
			logger.Debug("Skipping member with unknown type", "name", nv.Name, "error", err)
			continue
		}
		if err := m.ComputeOrigin(nil); err != nil {
			continue
		}
		m.ComputePrivacy()
		if !includePrivate && m.Privacy() != PrivacyNone {
			continue
		}
		if err := m.ComputePropertyLabel(table); err != nil {
			continue
		}
		members = append(members, m)
	}
	return members
}

// Properties returns the members of container promoted to properties by the
// rule table, in enumeration (name) order.
func Properties(container kind.Value, table *rules.Table) []*Member {
	var properties []*Member
	for _, nv := range EnumerateMembers(container) {
		if IsAbstract(nv.Value) || IsDeprecated(nv.Value) {
			continue
		}
		m := NewMember(nv.Name, container)
		m.member = nv.Value
		m.hasMember = true
		if err := m.ComputePropertyLabel(table); err != nil {
			continue
		}
		if m.PropLabel() != "" {
			properties = append(properties, m)
		}
	}
	return properties
}
