// Package catalog provides the built-in kind lattice mathscope ships with:
// a small hierarchy of parents and elements (integer ring, partitions,
// tableaux, permutation groups) with documented methods. It is what the CLI
// explores out of the box and what the test suite leans on.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"mathscope/internal/kind"
)

// Catalog holds the built-in kinds and the shared parent objects.
type Catalog struct {
	MathObject *kind.Kind
	Parent     *kind.Kind
	Element    *kind.Kind

	EnumeratedSet       *kind.Kind
	FiniteEnumeratedSet *kind.Kind
	IntegerRing         *kind.Kind
	Partitions          *kind.Kind

	Integer          *kind.Kind
	Str              *kind.Kind
	Boolean          *kind.Kind
	Partition        *kind.Kind
	Tableau          *kind.Kind
	StandardTableau  *kind.Kind
	PermutationGroup *kind.Kind

	// ZZ is the integer ring all integers report as their parent.
	ZZ *kind.Object
	// PartitionsAll is the parent of every partition.
	PartitionsAll *kind.Object
}

// groupData is the payload carried by permutation group objects.
type groupData struct {
	Degree  int
	Order   int
	Abelian bool
}

// New builds the catalog lattice with all methods attached.
func New() *Catalog {
	c := &Catalog{}

	c.MathObject = kind.New("MathObject")
	c.Parent = kind.New("Parent", c.MathObject)
	c.Element = kind.New("Element", c.MathObject)

	c.EnumeratedSet = kind.New("EnumeratedSet", c.Parent)
	c.FiniteEnumeratedSet = kind.New("FiniteEnumeratedSet", c.EnumeratedSet)
	c.IntegerRing = kind.New("IntegerRing", c.EnumeratedSet)
	c.Partitions = kind.New("Partitions", c.EnumeratedSet)

	c.Integer = kind.New("Integer", c.Element)
	c.Str = kind.New("Str", c.Element)
	c.Boolean = kind.New("Boolean", c.Element)
	c.Partition = kind.New("Partition", c.Element)
	c.Tableau = kind.New("Tableau", c.Element)
	c.StandardTableau = kind.New("StandardTableau", c.Tableau)
	c.PermutationGroup = kind.New("PermutationGroup", c.FiniteEnumeratedSet)

	c.defineMathObject()
	c.defineElement()
	c.defineEnumeratedSets()
	c.defineInteger()
	c.definePartition()
	c.defineTableau()
	c.definePermutationGroup()

	c.ZZ = kind.NewObject(c.IntegerRing, nil, "Integer Ring")
	c.PartitionsAll = kind.NewObject(c.Partitions, nil, "Partitions of all integers")

	return c
}

// Register populates the namespace with the catalog's kinds, collections and
// predicates so the rule table can resolve them.
func (c *Catalog) Register(ns *kind.Namespace) error {
	kinds := []*kind.Kind{
		c.MathObject, c.Parent, c.Element,
		c.EnumeratedSet, c.FiniteEnumeratedSet, c.IntegerRing, c.Partitions,
		c.Integer, c.Str, c.Boolean,
		c.Partition, c.Tableau, c.StandardTableau, c.PermutationGroup,
	}
	for _, k := range kinds {
		if err := ns.RegisterKind(k); err != nil {
			return err
		}
	}

	if err := ns.RegisterCollection(&kind.CollectionFunc{
		CollectionName: "EnumeratedSets",
		Fn: func(v kind.Value) (bool, error) {
			return kind.IsInstance(v, c.EnumeratedSet), nil
		},
	}); err != nil {
		return err
	}
	if err := ns.RegisterCollection(&kind.CollectionFunc{
		CollectionName: "FiniteEnumeratedSets",
		Fn: func(v kind.Value) (bool, error) {
			if !kind.IsInstance(v, c.EnumeratedSet) {
				return false, nil
			}
			finite, err := callBool(v, "is_finite")
			if err != nil {
				return false, err
			}
			return finite, nil
		},
	}); err != nil {
		return err
	}

	return ns.RegisterPredicate("is_parent", func(v kind.Value) bool {
		return kind.IsInstance(v, c.Parent)
	})
}

// Samples returns the named example values offered by the CLI.
func (c *Catalog) Samples() map[string]kind.Value {
	return map[string]kind.Value{
		"ZZ": c.ZZ,
		"n":  c.Int(42),
		"p":  c.NewPartition(3, 3, 2, 1),
		"t":  c.NewTableau([][]int{{1, 2, 5, 6}, {3}, {4}}),
		"st": c.NewStandardTableau([][]int{{1, 2, 4}, {3, 5}}),
		"G":  c.NewPermutationGroup(5, 20, false),
		"A":  c.NewPermutationGroup(4, 12, true),
	}
}

// Int wraps a native integer as a catalog value.
func (c *Catalog) Int(n int) *kind.Object {
	obj := kind.NewObject(c.Integer, n, fmt.Sprintf("%d", n))
	obj.SetAttr("_parent", c.ZZ)
	return obj
}

// Text wraps a native string as a catalog value.
func (c *Catalog) Text(s string) *kind.Object {
	return kind.NewObject(c.Str, s, s)
}

// Bool wraps a native boolean as a catalog value.
func (c *Catalog) Bool(b bool) *kind.Object {
	return kind.NewObject(c.Boolean, b, fmt.Sprintf("%v", b))
}

// NewPartition creates a partition from its parts, largest first.
func (c *Catalog) NewPartition(parts ...int) *kind.Object {
	obj := kind.NewObject(c.Partition, parts, reprInts(parts))
	obj.SetAttr("_parent", c.PartitionsAll)
	return obj
}

// NewTableau creates a tableau from its rows.
func (c *Catalog) NewTableau(rows [][]int) *kind.Object {
	return kind.NewObject(c.Tableau, rows, reprRows(rows))
}

// NewStandardTableau creates a standard tableau from its rows.
func (c *Catalog) NewStandardTableau(rows [][]int) *kind.Object {
	return kind.NewObject(c.StandardTableau, rows, reprRows(rows))
}

// NewPermutationGroup creates a permutation group of the given degree, order
// and commutativity.
func (c *Catalog) NewPermutationGroup(degree, order int, abelian bool) *kind.Object {
	data := groupData{Degree: degree, Order: order, Abelian: abelian}
	repr := fmt.Sprintf("Permutation group of degree %d and order %d", degree, order)
	return kind.NewObject(c.PermutationGroup, data, repr)
}

func (c *Catalog) defineMathObject() {
	c.MathObject.DefineMethod(&kind.Method{
		Name:    "category",
		DocText: "Return the category this object belongs to.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			name := kind.Of(recv).Name()
			return c.Text(fmt.Sprintf("Category of %s", pluralize(name))), nil
		},
	})
	c.MathObject.DefineMethod(&kind.Method{
		Name:    "_repr_",
		DocText: "Return the textual representation of this object.",
		Style:   kind.StyleDescriptor,
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			return c.Text(recv.Repr()), nil
		},
	})
	c.MathObject.Define("__class__", &kind.Descriptor{
		Name:    "__class__",
		DocText: "The kind of this object.",
		Get: func(container kind.Value) (kind.Value, error) {
			return kind.Of(container), nil
		},
	})
}

func (c *Catalog) defineElement() {
	c.Element.DefineMethod(&kind.Method{
		Name:    "parent",
		DocText: "Return the parent this element belongs to.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			obj, ok := recv.(*kind.Object)
			if !ok {
				return nil, fmt.Errorf("parent is only defined on instances")
			}
			p, ok := obj.Attr("_parent")
			if !ok {
				return nil, fmt.Errorf("no parent recorded for %s", recv.Repr())
			}
			return p, nil
		},
	})
}

func (c *Catalog) defineEnumeratedSets() {
	c.EnumeratedSet.DefineMethod(&kind.Method{
		Name:     "is_finite",
		DocText:  "Whether this set has finitely many elements.",
		Abstract: true,
	})
	c.EnumeratedSet.DefineMethod(&kind.Method{
		Name:     "cardinality",
		DocText:  "The number of elements of this set.",
		Abstract: true,
	})
	c.EnumeratedSet.DefineMethod(&kind.Method{
		Name:     "an_element",
		DocText:  "Return a typical element of this set.",
		Abstract: true,
	})

	c.FiniteEnumeratedSet.DefineMethod(&kind.Method{
		Name:    "is_finite",
		DocText: "Whether this set has finitely many elements. Always true here.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Bool(true), nil
		},
	})

	c.IntegerRing.DefineMethod(&kind.Method{
		Name:    "is_finite",
		DocText: "Whether the integer ring is finite. It is not.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Bool(false), nil
		},
	})
	c.IntegerRing.DefineMethod(&kind.Method{
		Name:    "cardinality",
		DocText: "The cardinality of the integer ring.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Text("+Infinity"), nil
		},
	})
	c.IntegerRing.DefineMethod(&kind.Method{
		Name:    "an_element",
		DocText: "Return a typical integer.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Int(1), nil
		},
	})

	c.Partitions.DefineMethod(&kind.Method{
		Name:    "is_finite",
		DocText: "Whether the set of all partitions is finite. It is not.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Bool(false), nil
		},
	})
	c.Partitions.DefineMethod(&kind.Method{
		Name:    "an_element",
		DocText: "Return a typical partition.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.NewPartition(2, 1), nil
		},
	})
}

func (c *Catalog) defineInteger() {
	c.Integer.DefineMethod(&kind.Method{
		Name:    "is_prime",
		DocText: "Whether this integer is a prime number.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(isPrime(n)), nil
		},
	})
	c.Integer.DefineMethod(&kind.Method{
		Name:    "is_zero",
		DocText: "Whether this integer is zero.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(n == 0), nil
		},
	})
	c.Integer.DefineMethod(&kind.Method{
		Name:    "is_unit",
		DocText: "Whether this integer is a unit of the integer ring.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(n == 1 || n == -1), nil
		},
	})
	c.Integer.DefineMethod(&kind.Method{
		Name:    "factor",
		DocText: "Return the prime factorization of this integer.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, fmt.Errorf("factorization of 0 is not defined")
			}
			return c.Text(factorRepr(n)), nil
		},
	})
	c.Integer.DefineMethod(&kind.Method{
		Name:    "abs",
		DocText: "Return the absolute value of this integer.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = -n
			}
			return c.Int(n), nil
		},
	})
	c.Integer.DefineMethod(&kind.Method{
		Name:    "digits",
		DocText: "Return the digits of this integer in the given base,\nleast significant first.",
		Params:  []kind.Param{{Name: "base", Default: "10", HasDef: true}},
		Fn: func(recv kind.Value, args ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			base := 10
			if len(args) > 0 {
				b, err := intPayload(args[0])
				if err != nil {
					return nil, err
				}
				base = b
			}
			if base < 2 {
				return nil, fmt.Errorf("base must be at least 2")
			}
			return c.Text(reprInts(digits(n, base))), nil
		},
	})
	// Superseded by digits; kept so old sessions still resolve the name.
	c.Integer.Define("ndigits", kind.Deprecate(&kind.Method{
		Name:    "ndigits",
		DocText: "Return the number of decimal digits of this integer.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			n, err := intPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Int(len(digits(n, 10))), nil
		},
	}))
}

func (c *Catalog) definePartition() {
	c.Partition.DefineMethod(&kind.Method{
		Name:    "conjugate",
		DocText: "Return the conjugate partition, obtained by transposing\nthe Young diagram.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.NewPartition(conjugate(parts)...), nil
		},
	})
	c.Partition.DefineMethod(&kind.Method{
		Name:    "length",
		DocText: "Return the number of parts of this partition.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Int(len(parts)), nil
		},
	})
	c.Partition.DefineMethod(&kind.Method{
		Name:    "cells",
		DocText: "Return the coordinates of the cells of the Young diagram.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			var cells []string
			for i, p := range parts {
				for j := 0; j < p; j++ {
					cells = append(cells, fmt.Sprintf("(%d, %d)", i, j))
				}
			}
			return c.Text("[" + strings.Join(cells, ", ") + "]"), nil
		},
	})
	c.Partition.DefineMethod(&kind.Method{
		Name:    "is_empty",
		DocText: "Whether this partition has no parts.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(len(parts) == 0), nil
		},
	})
	c.Partition.DefineMethod(&kind.Method{
		Name:    "add_cell",
		DocText: "Return the partition obtained by adding a cell in row i.",
		Params: []kind.Param{
			{Name: "i"},
			{Name: "j", Default: "0", HasDef: true},
		},
		Fn: func(recv kind.Value, args ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			if len(args) < 1 {
				return nil, fmt.Errorf("add_cell requires a row index")
			}
			i, err := intPayload(args[0])
			if err != nil {
				return nil, err
			}
			grown := append(append([]int(nil), parts...), 0)
			if i < 0 || i >= len(grown) {
				return nil, fmt.Errorf("row index %d out of range", i)
			}
			grown[i]++
			if grown[len(grown)-1] == 0 {
				grown = grown[:len(grown)-1]
			}
			if !sort.IsSorted(sort.Reverse(sort.IntSlice(grown))) {
				return nil, fmt.Errorf("adding a cell in row %d breaks the partition shape", i)
			}
			return c.NewPartition(grown...), nil
		},
	})
	c.Partition.DefineMethod(&kind.Method{
		Name:    "_ascii_art_",
		DocText: "Return an ascii art rendering of the Young diagram.",
		Style:   kind.StyleDescriptor,
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			parts, err := intsPayload(recv)
			if err != nil {
				return nil, err
			}
			lines := make([]string, len(parts))
			for i, p := range parts {
				lines[i] = strings.Repeat("*", p)
			}
			return c.Text(strings.Join(lines, "\n")), nil
		},
	})
	c.Partition.Define("_reduction", &kind.Attribute{
		DocText: "Reconstruction data for serialization.",
		Value:   kind.NewObject(c.Str, "Partition", "(Partition, parts)"),
	})
}

func (c *Catalog) defineTableau() {
	c.Tableau.DefineMethod(&kind.Method{
		Name:    "size",
		DocText: "Return the number of cells of this tableau.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			rows, err := rowsPayload(recv)
			if err != nil {
				return nil, err
			}
			total := 0
			for _, row := range rows {
				total += len(row)
			}
			return c.Int(total), nil
		},
	})
	c.Tableau.DefineMethod(&kind.Method{
		Name:    "is_row_strict",
		DocText: "Whether every row is strictly increasing left to right.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			rows, err := rowsPayload(recv)
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				for j := 1; j < len(row); j++ {
					if row[j] <= row[j-1] {
						return c.Bool(false), nil
					}
				}
			}
			return c.Bool(true), nil
		},
	})
	c.Tableau.DefineMethod(&kind.Method{
		Name:    "is_standard",
		DocText: "Whether this tableau is standard: the entries are 1..n,\neach used once, increasing along rows and columns.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			rows, err := rowsPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(isStandard(rows)), nil
		},
	})
	c.Tableau.DefineMethod(&kind.Method{
		Name:    "shape",
		DocText: "Return the partition shape of this tableau.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			rows, err := rowsPayload(recv)
			if err != nil {
				return nil, err
			}
			shape := make([]int, len(rows))
			for i, row := range rows {
				shape[i] = len(row)
			}
			return c.NewPartition(shape...), nil
		},
	})

	// Standard tableaux answer without inspecting their entries.
	c.StandardTableau.DefineMethod(&kind.Method{
		Name:    "is_standard",
		DocText: "Whether this tableau is standard. Always true here.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Bool(true), nil
		},
	})
}

func (c *Catalog) definePermutationGroup() {
	c.PermutationGroup.DefineMethod(&kind.Method{
		Name:    "cardinality",
		DocText: "Return the order of this group.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			data, err := groupPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Int(data.Order), nil
		},
	})
	c.PermutationGroup.DefineMethod(&kind.Method{
		Name:    "degree",
		DocText: "Return the number of points this group acts on.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			data, err := groupPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Int(data.Degree), nil
		},
	})
	c.PermutationGroup.DefineMethod(&kind.Method{
		Name:    "is_abelian",
		DocText: "Whether this group is commutative.",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			data, err := groupPayload(recv)
			if err != nil {
				return nil, err
			}
			return c.Bool(data.Abelian), nil
		},
	})
	c.PermutationGroup.DefineMethod(&kind.Method{
		Name:    "an_element",
		DocText: "Return the identity permutation.",
		Fn: func(kind.Value, ...kind.Value) (kind.Value, error) {
			return c.Text("()"), nil
		},
	})
}

// callBool binds and invokes a zero-argument member expected to return a
// boolean payload.
func callBool(v kind.Value, name string) (bool, error) {
	def, _, found := kind.Of(v).Resolve(name)
	if !found {
		return false, fmt.Errorf("no member %s on %s", name, kind.Of(v).Name())
	}
	bound, err := def.Bind(v)
	if err != nil {
		return false, err
	}
	callable, ok := bound.(kind.Callable)
	if !ok {
		return false, fmt.Errorf("%s is not callable", name)
	}
	result, err := callable.Call()
	if err != nil {
		return false, err
	}
	payload, ok := kind.Payload(result)
	if !ok {
		return false, fmt.Errorf("%s returned no payload", name)
	}
	b, ok := payload.(bool)
	if !ok {
		return false, fmt.Errorf("%s did not return a boolean", name)
	}
	return b, nil
}

func intPayload(v kind.Value) (int, error) {
	payload, ok := kind.Payload(v)
	if !ok {
		return 0, fmt.Errorf("%s carries no payload", v.Repr())
	}
	n, ok := payload.(int)
	if !ok {
		return 0, fmt.Errorf("%s is not an integer", v.Repr())
	}
	return n, nil
}

func intsPayload(v kind.Value) ([]int, error) {
	payload, ok := kind.Payload(v)
	if !ok {
		return nil, fmt.Errorf("%s carries no payload", v.Repr())
	}
	parts, ok := payload.([]int)
	if !ok {
		return nil, fmt.Errorf("%s is not a sequence of integers", v.Repr())
	}
	return parts, nil
}

func rowsPayload(v kind.Value) ([][]int, error) {
	payload, ok := kind.Payload(v)
	if !ok {
		return nil, fmt.Errorf("%s carries no payload", v.Repr())
	}
	rows, ok := payload.([][]int)
	if !ok {
		return nil, fmt.Errorf("%s is not a tableau", v.Repr())
	}
	return rows, nil
}

func groupPayload(v kind.Value) (groupData, error) {
	payload, ok := kind.Payload(v)
	if !ok {
		return groupData{}, fmt.Errorf("%s carries no payload", v.Repr())
	}
	data, ok := payload.(groupData)
	if !ok {
		return groupData{}, fmt.Errorf("%s is not a permutation group", v.Repr())
	}
	return data, nil
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func factorRepr(n int) string {
	var pieces []string
	if n < 0 {
		pieces = append(pieces, "-1")
		n = -n
	}
	for d := 2; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		exp := 0
		for n%d == 0 {
			n /= d
			exp++
		}
		if exp == 1 {
			pieces = append(pieces, fmt.Sprintf("%d", d))
		} else {
			pieces = append(pieces, fmt.Sprintf("%d^%d", d, exp))
		}
	}
	if n > 1 {
		pieces = append(pieces, fmt.Sprintf("%d", n))
	}
	if len(pieces) == 0 {
		return "1"
	}
	return strings.Join(pieces, " * ")
}

func digits(n, base int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	var ds []int
	for n > 0 {
		ds = append(ds, n%base)
		n /= base
	}
	return ds
}

func conjugate(parts []int) []int {
	if len(parts) == 0 {
		return nil
	}
	conj := make([]int, parts[0])
	for _, p := range parts {
		for j := 0; j < p; j++ {
			conj[j]++
		}
	}
	return conj
}

func isStandard(rows [][]int) bool {
	seen := map[int]bool{}
	total := 0
	for i, row := range rows {
		for j, entry := range row {
			total++
			if seen[entry] {
				return false
			}
			seen[entry] = true
			if j > 0 && row[j] <= row[j-1] {
				return false
			}
			if i > 0 && j < len(rows[i-1]) && entry <= rows[i-1][j] {
				return false
			}
		}
	}
	for want := 1; want <= total; want++ {
		if !seen[want] {
			return false
		}
	}
	return true
}

func reprInts(ns []int) string {
	pieces := make([]string, len(ns))
	for i, n := range ns {
		pieces[i] = fmt.Sprintf("%d", n)
	}
	return "[" + strings.Join(pieces, ", ") + "]"
}

func reprRows(rows [][]int) string {
	pieces := make([]string, len(rows))
	for i, row := range rows {
		pieces[i] = reprInts(row)
	}
	return "[" + strings.Join(pieces, ", ") + "]"
}

func pluralize(name string) string {
	if strings.HasSuffix(name, "s") {
		return strings.ToLower(name)
	}
	return strings.ToLower(name) + "s"
}
