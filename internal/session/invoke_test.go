package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathscope/internal/kind"
)

func TestInvoke_NavigatesToResult(t *testing.T) {
	c, table := fixture(t)
	s := New(c.NewPartition(3, 3, 2, 1), table, nil)

	result, err := s.Invoke("conjugate", nil, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "[4, 3, 2]", result.Repr())
	assert.Same(t, result, s.Value())
	assert.Equal(t, 2, s.History().Len())
}

func TestInvoke_WithArguments(t *testing.T) {
	c, table := fixture(t)
	s := New(c.Int(42), table, nil)

	result, err := s.Invoke("digits", []kind.Value{c.Int(2)}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 0, 1, 0, 1]", result.Repr())
}

func TestInvoke_UnknownMember(t *testing.T) {
	c, table := fixture(t)
	s := New(c.Int(42), table, nil)

	_, err := s.Invoke("no_such_member", nil, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no member")
}

func TestInvoke_FailureLeavesValueUnchanged(t *testing.T) {
	c, table := fixture(t)
	n := c.Int(42)
	s := New(n, table, nil)

	_, err := s.Invoke("digits", []kind.Value{c.Int(1)}, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
	assert.Same(t, kind.Value(n), s.Value())
	assert.Equal(t, 1, s.History().Len())
}

func TestInvoke_Timeout(t *testing.T) {
	c, table := fixture(t)

	slow := kind.New("Slow", c.Element)
	slow.DefineMethod(&kind.Method{
		Name: "crunch",
		Fn: func(recv kind.Value, _ ...kind.Value) (kind.Value, error) {
			time.Sleep(2 * time.Second)
			return recv, nil
		},
	})
	obj := kind.NewObject(slow, nil, "slow")
	s := New(obj, table, nil)

	start := time.Now()
	_, err := s.Invoke("crunch", nil, 50*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), time.Second)
	assert.Same(t, kind.Value(obj), s.Value())
	assert.Equal(t, 1, s.History().Len())
}

func TestInvoke_ZeroTimeoutUsesDefault(t *testing.T) {
	c, table := fixture(t)
	s := New(c.Int(42), table, nil)

	result, err := s.Invoke("abs", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "42", result.Repr())
}
