package render

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented diff between the textual representations of
// two explored values, used to compare history entries.
func (r *Renderer) Diff(before, after string) string {
	dmp := diffmatchpatch.New()
	beforeRunes, afterRunes, lines := dmp.DiffLinesToRunes(before+"\n", after+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(beforeRunes, afterRunes, false), lines)

	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			b.WriteString(prefix + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
