// Package render turns the explorer core's outputs (property rows, member
// menus, documentation, history options) into styled terminal output. It is
// presentation glue: nothing here feeds back into the core.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"mathscope/pkg/exploretypes"
)

// valueWidth bounds property values in the table display.
const valueWidth = 48

// Renderer holds the styles and the markdown renderer for one terminal.
type Renderer struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	group    lipgloss.Style
	member   lipgloss.Style
	faint    lipgloss.Style
	markdown *glamour.TermRenderer
	plain    bool
}

// NewRenderer creates a renderer, degrading to plain text when the terminal
// reports no color support.
func NewRenderer() (*Renderer, error) {
	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	r := &Renderer{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("30")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		group:    lipgloss.NewStyle().Bold(true).Underline(true),
		member:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		faint:    lipgloss.NewStyle().Faint(true),
		markdown: markdown,
		plain:    termenv.ColorProfile() == termenv.Ascii,
	}
	return r, nil
}

// Title renders the headline naming the current value.
func (r *Renderer) Title(repr string, kindName string) string {
	head := fmt.Sprintf("Exploring: %s", repr)
	if r.plain {
		return head + "  (" + kindName + ")"
	}
	return r.title.Render(head) + " " + r.faint.Render("("+kindName+")")
}

// PropertyTable renders the classified properties as label/value lines.
func (r *Renderer) PropertyTable(rows []exploretypes.PropertyRow) string {
	if len(rows) == 0 {
		return "(no properties)"
	}
	width := 0
	for _, row := range rows {
		if w := ansi.StringWidth(row.Label); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, row := range rows {
		label := fmt.Sprintf("%-*s", width, row.Label)
		value := truncate(row.Value, valueWidth)
		if r.plain {
			fmt.Fprintf(&b, "%s : %s\n", label, value)
			continue
		}
		fmt.Fprintf(&b, "%s : %s\n", r.label.Render(label), r.value.Render(value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// MemberMenu renders the member menu grouped by defining ancestor.
func (r *Renderer) MemberMenu(groups []exploretypes.MenuGroup) string {
	if len(groups) == 0 {
		return "(no members)"
	}
	var b strings.Builder
	for _, group := range groups {
		if r.plain {
			fmt.Fprintf(&b, "%s:\n", group.Origin)
		} else {
			fmt.Fprintf(&b, "%s\n", r.group.Render(group.Origin))
		}
		for _, item := range group.Members {
			name := item.Name
			if !r.plain {
				name = r.member.Render(name)
			}
			fmt.Fprintf(&b, "  %s  %s\n", name, r.faint.Render(item.Type))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Doc renders a member's documentation and signature as markdown.
func (r *Renderer) Doc(info *exploretypes.DocInfo) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s(%s)\n\n", info.Name, strings.Join(argDisplay(info), ", "))
	if info.Origin != "" {
		fmt.Fprintf(&b, "*Defined in %s.*\n\n", info.Origin)
	}
	if info.Doc != "" {
		b.WriteString(info.Doc)
		b.WriteString("\n")
	} else {
		b.WriteString("No documentation available.\n")
	}
	rendered, err := r.markdown.Render(b.String())
	if err != nil {
		return "", fmt.Errorf("failed to render documentation: %w", err)
	}
	return rendered, nil
}

// HistoryMenu renders the navigation options, marking the current index.
func (r *Renderer) HistoryMenu(options []exploretypes.HistoryOption, current int) string {
	var b strings.Builder
	for _, opt := range options {
		marker := "  "
		if opt.Index == current {
			marker = "> "
		}
		line := marker + opt.Label
		if !r.plain && opt.Index == current {
			line = r.title.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// argDisplay formats the signature, attaching defaults to the trailing
// arguments and dropping the receiver.
func argDisplay(info *exploretypes.DocInfo) []string {
	args := info.Args
	if len(args) > 0 && (args[0] == "self" || args[0] == "cls") {
		args = args[1:]
	}
	display := make([]string, len(args))
	offset := len(args) - len(info.Defaults)
	for i, arg := range args {
		if i >= offset && offset >= 0 {
			display[i] = fmt.Sprintf("%s=%s", arg, info.Defaults[i-offset])
		} else {
			display[i] = arg
		}
	}
	return display
}

// truncate cuts s to the given display width, ignoring ANSI sequences.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width-1, "…")
}
