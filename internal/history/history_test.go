package history

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
)

func value(repr string) kind.Value {
	return kind.NewObject(kind.New("K"), nil, repr)
}

func TestNew(t *testing.T) {
	v := value("A")
	h := New(v, "a")

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.CurrentIndex())
	assert.Same(t, v, h.Current())
	assert.Equal(t, "a", h.InitialName())
	assert.True(t, h.AtHead())
}

func TestNew_EmptyInitialName(t *testing.T) {
	h := New(value("A"), "")
	options := h.MenuOptions()
	require.Len(t, options, 1)
	assert.Equal(t, "0: value", options[0].Label)
	assert.Equal(t, "", h.InitialName())
}

func TestPush_Appends(t *testing.T) {
	h := New(value("A"), "a")
	b := value("B")
	h.Push(b)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.CurrentIndex())
	assert.Same(t, b, h.Current())
}

func TestPush_CutsForwardBranch(t *testing.T) {
	// History [A, B, C] with the current index moved back to B: pushing D
	// discards C and yields [A, B, D] with the current index at D.
	a, b, c, d := value("A"), value("B"), value("C"), value("D")
	h := New(a, "a")
	h.Push(b)
	h.Push(c)
	require.NoError(t, h.Select(1))

	h.Push(d)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.CurrentIndex())
	assert.Same(t, d, h.Current())

	got, err := h.Get(0)
	require.NoError(t, err)
	assert.Same(t, a, got)
	got, err = h.Get(1)
	require.NoError(t, err)
	assert.Same(t, b, got)
	got, err = h.Get(2)
	require.NoError(t, err)
	assert.Same(t, d, got)
}

func TestPush_BoundedLength(t *testing.T) {
	h := New(value("v0"), "v0")
	for i := 1; i <= MaxLen+5; i++ {
		h.Push(value(fmt.Sprintf("v%d", i)))
	}

	assert.Equal(t, MaxLen, h.Len())
	assert.Equal(t, MaxLen-1, h.CurrentIndex())
	// The oldest entries were dropped from the front.
	oldest, err := h.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "v6", oldest.Repr())
	assert.Equal(t, fmt.Sprintf("v%d", MaxLen+5), h.Current().Repr())
}

func TestPop(t *testing.T) {
	a := value("A")
	h := New(a, "a")
	h.Push(value("B"))
	h.Push(value("C"))

	require.NoError(t, h.Pop(2))
	assert.Equal(t, 1, h.Len())
	assert.Same(t, a, h.Current())
}

func TestPop_Underflow(t *testing.T) {
	h := New(value("A"), "a")
	assert.ErrorIs(t, h.Pop(1), ErrNoMoreHistory)
	// The failed pop must leave the history intact.
	assert.Equal(t, 1, h.Len())

	h.Push(value("B"))
	assert.ErrorIs(t, h.Pop(2), ErrNoMoreHistory)
	assert.Equal(t, 2, h.Len())
	require.NoError(t, h.Pop(1))
	assert.ErrorIs(t, h.Pop(1), ErrNoMoreHistory)
}

func TestPop_ClampsCurrentIndex(t *testing.T) {
	h := New(value("A"), "a")
	h.Push(value("B"))
	h.Push(value("C"))

	require.NoError(t, h.Pop(1))
	assert.Equal(t, 1, h.CurrentIndex())
	assert.Equal(t, "B", h.Current().Repr())
}

func TestSelect(t *testing.T) {
	a := value("A")
	h := New(a, "a")
	h.Push(value("B"))
	h.Push(value("C"))

	require.NoError(t, h.Select(0))
	assert.Same(t, a, h.Current())
	assert.False(t, h.AtHead())
	// Selecting is a read: nothing was discarded.
	assert.Equal(t, 3, h.Len())

	assert.Error(t, h.Select(-1))
	assert.Error(t, h.Select(3))
}

func TestGet_OutOfRange(t *testing.T) {
	h := New(value("A"), "a")
	_, err := h.Get(1)
	assert.Error(t, err)
	_, err = h.Get(-1)
	assert.Error(t, err)
}

func TestMenuOptions(t *testing.T) {
	h := New(value("A"), "start")
	h.Push(value("B"))

	options := h.MenuOptions()
	require.Len(t, options, 2)
	assert.Equal(t, "0: start", options[0].Label)
	assert.Equal(t, 0, options[0].Index)
	assert.Equal(t, "1: B", options[1].Label)
	assert.Equal(t, 1, options[1].Index)
}

func TestMenuOptions_TruncatesLongReprs(t *testing.T) {
	h := New(value("A"), "a")
	h.Push(value(strings.Repeat("x", 200)))

	options := h.MenuOptions()
	require.Len(t, options, 2)
	label := options[1].Label
	assert.LessOrEqual(t, len([]rune(label)), labelWidth+len("1: "))
	assert.True(t, strings.HasSuffix(label, "…"))
}

func TestGuessInitialName(t *testing.T) {
	tests := []struct {
		name string
		log  []string
		want string
	}{
		{
			name: "simple",
			log:  []string{"p = Partition([3, 2])", "explore(p)"},
			want: "p",
		},
		{
			name: "newest wins",
			log:  []string{"explore(old)", "explore(new)"},
			want: "new",
		},
		{
			name: "whitespace tolerated",
			log:  []string{"explore(  G  )"},
			want: "G",
		},
		{
			name: "no match",
			log:  []string{"print(1 + 1)"},
			want: "",
		},
		{
			name: "empty log",
			log:  nil,
			want: "",
		},
		{
			name: "expression argument ignored",
			log:  []string{"explore(f(x))", "explore(zz)"},
			want: "zz",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessInitialName(tt.log))
		})
	}
}
