// Package shell provides the interactive explorer REPL. It wires the sample
// catalog, the rule table and the renderer into an ishell loop; all domain
// logic lives in the session and below.
package shell

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell/v2"

	"mathscope/internal/catalog"
	"mathscope/internal/introspect"
	"mathscope/internal/kind"
	"mathscope/internal/render"
	"mathscope/internal/rules"
	"mathscope/internal/session"
	"mathscope/internal/version"
)

// Shell is the interactive explorer front end.
type Shell struct {
	ishell   *ishell.Shell
	catalog  *catalog.Catalog
	table    *rules.Table
	renderer *render.Renderer
	widgets  *render.WidgetRegistry
	session  *session.Session
	inputLog []string
}

// New assembles a shell around the given catalog and rule table. The table
// must have been compiled against the same catalog: rule contexts match
// kinds by identity.
func New(cat *catalog.Catalog, table *rules.Table) (*Shell, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create shell: %w", err)
	}
	s := &Shell{
		ishell:   ishell.New(),
		catalog:  cat,
		table:    table,
		renderer: renderer,
		widgets:  defaultWidgets(cat),
	}
	s.ishell.SetPrompt("mathscope> ")
	s.register()
	return s, nil
}

// Run starts the REPL and blocks until the user exits.
func (s *Shell) Run() {
	s.ishell.Println("mathscope " + version.Get().String())
	s.ishell.Println("Type 'explore <name>' to start. Samples: " + strings.Join(s.sampleNames(), ", "))
	s.ishell.Run()
}

func (s *Shell) register() {
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "explore",
		Help: "explore <sample>: open an explorer session on a catalog sample",
		Func: s.cmdExplore,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "props",
		Help: "show the classified properties of the current value",
		Func: s.cmdProps,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "members",
		Help: "show the member menu grouped by defining ancestor",
		Func: s.cmdMembers,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "doc",
		Help: "doc <member>: show a member's documentation and signature",
		Func: s.cmdDoc,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "call",
		Help: "call <member> [args...]: invoke a method and explore its result",
		Func: s.cmdCall,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "prop",
		Help: "prop <name>: compute a property and explore its value",
		Func: s.cmdProp,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "back",
		Help: "return to the previously explored value",
		Func: s.cmdBack,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "history",
		Help: "show the exploration history",
		Func: s.cmdHistory,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "select",
		Help: "select <index>: jump to a history entry without losing the branch",
		Func: s.cmdSelect,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "diff",
		Help: "diff <i> <j>: compare the representations of two history entries",
		Func: s.cmdDiff,
	})
	s.ishell.AddCmd(&ishell.Cmd{
		Name: "version",
		Help: "show version information",
		Func: func(c *ishell.Context) { c.Println(version.Get().String()) },
	})
}

func (s *Shell) cmdExplore(c *ishell.Context) {
	if len(c.Args) != 1 {
		c.Println("usage: explore <sample>")
		return
	}
	name := c.Args[0]
	value, ok := s.catalog.Samples()[name]
	if !ok {
		c.Printf("unknown sample %q; available: %s\n", name, strings.Join(s.sampleNames(), ", "))
		return
	}
	s.inputLog = append(s.inputLog, fmt.Sprintf("explore(%s)", name))
	s.session = session.New(value, s.table, s.inputLog)
	s.showCurrent(c)
}

func (s *Shell) cmdProps(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	c.Println(s.renderer.PropertyTable(s.session.Properties()))
}

func (s *Shell) cmdMembers(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	c.Println(s.renderer.MemberMenu(s.session.MemberGroups()))
}

func (s *Shell) cmdDoc(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if len(c.Args) != 1 {
		c.Println("usage: doc <member>")
		return
	}
	info, err := s.session.SelectMember(c.Args[0])
	if err != nil {
		c.Println(err)
		return
	}
	rendered, err := s.renderer.Doc(info)
	if err != nil {
		c.Println(err)
		return
	}
	c.Println(rendered)
}

func (s *Shell) cmdCall(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if len(c.Args) < 1 {
		c.Println("usage: call <member> [args...]")
		return
	}
	args := make([]kind.Value, 0, len(c.Args)-1)
	for _, raw := range c.Args[1:] {
		args = append(args, s.parseArg(raw))
	}
	if _, err := s.session.Invoke(c.Args[0], args, 0); err != nil {
		c.Println(err)
		return
	}
	s.showCurrent(c)
}

func (s *Shell) cmdProp(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if len(c.Args) != 1 {
		c.Println("usage: prop <name>")
		return
	}
	if _, err := s.session.PropertyValue(c.Args[0]); err != nil {
		c.Println(err)
		return
	}
	s.showCurrent(c)
}

func (s *Shell) cmdBack(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if err := s.session.Back(); err != nil {
		c.Println(err)
		return
	}
	s.showCurrent(c)
}

func (s *Shell) cmdHistory(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	c.Println(s.renderer.HistoryMenu(s.session.HistoryOptions(), s.session.History().CurrentIndex()))
}

func (s *Shell) cmdSelect(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if len(c.Args) != 1 {
		c.Println("usage: select <index>")
		return
	}
	i, err := strconv.Atoi(c.Args[0])
	if err != nil {
		c.Println("index must be a number")
		return
	}
	if err := s.session.SelectHistory(i); err != nil {
		c.Println(err)
		return
	}
	s.showCurrent(c)
}

func (s *Shell) cmdDiff(c *ishell.Context) {
	if !s.requireSession(c) {
		return
	}
	if len(c.Args) != 2 {
		c.Println("usage: diff <i> <j>")
		return
	}
	i, err1 := strconv.Atoi(c.Args[0])
	j, err2 := strconv.Atoi(c.Args[1])
	if err1 != nil || err2 != nil {
		c.Println("indices must be numbers")
		return
	}
	before, err := s.session.History().Get(i)
	if err != nil {
		c.Println(err)
		return
	}
	after, err := s.session.History().Get(j)
	if err != nil {
		c.Println(err)
		return
	}
	c.Println(s.renderer.Diff(before.Repr(), after.Repr()))
}

func (s *Shell) showCurrent(c *ishell.Context) {
	value := s.session.Value()
	kindName := introspect.ExtractKindName(kind.Of(value), false)
	c.Println(s.renderer.Title(value.Repr(), kindName))
	if factory, ok := s.widgets.For(value); ok {
		if widget := factory(value); widget != "" {
			c.Println(widget)
		}
	}
	c.Println(s.renderer.PropertyTable(s.session.Properties()))
}

func (s *Shell) requireSession(c *ishell.Context) bool {
	if s.session == nil {
		c.Println("no session open; use 'explore <sample>' first")
		return false
	}
	return true
}

// parseArg converts a command-line token into a catalog value. Integers and
// booleans get their native kinds, everything else becomes a string value.
func (s *Shell) parseArg(raw string) kind.Value {
	if n, err := strconv.Atoi(raw); err == nil {
		return s.catalog.Int(n)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return s.catalog.Bool(b)
	}
	return s.catalog.Text(strings.Trim(raw, `"'`))
}

// defaultWidgets registers the specialized renderings the built-in catalog
// ships: partitions show their Young diagram under the title.
func defaultWidgets(cat *catalog.Catalog) *render.WidgetRegistry {
	reg := render.NewWidgetRegistry()
	reg.Register(cat.Partition, func(v kind.Value) string {
		def, _, found := kind.Of(v).Resolve("_ascii_art_")
		if !found {
			return ""
		}
		bound, err := def.Bind(v)
		if err != nil {
			return ""
		}
		callable, ok := bound.(kind.Callable)
		if !ok {
			return ""
		}
		art, err := callable.Call()
		if err != nil {
			return ""
		}
		return art.Repr()
	})
	return reg
}

func (s *Shell) sampleNames() []string {
	samples := s.catalog.Samples()
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
