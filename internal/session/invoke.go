package session

import (
	"context"
	"fmt"
	"time"

	"mathscope/internal/kind"
	"mathscope/internal/logger"
)

// DefaultInvokeTimeout bounds how long a user-triggered method call may run
// before it is abandoned.
const DefaultInvokeTimeout = 15 * time.Second

// Invoke calls the named member of the current value with the given
// arguments under a wall-clock timeout. On success the result becomes the
// new current value (a navigation push). On timeout or failure a short error
// is returned and the current value is left unchanged.
func (s *Session) Invoke(name string, args []kind.Value, timeout time.Duration) (kind.Value, error) {
	if timeout <= 0 {
		timeout = DefaultInvokeTimeout
	}
	var target *kind.BoundMethod
	for _, m := range s.members {
		if m.Name != name {
			continue
		}
		bm, ok := m.Member().(*kind.BoundMethod)
		if !ok {
			return nil, fmt.Errorf("%s is not callable", name)
		}
		target = bm
		break
	}
	if target == nil {
		return nil, fmt.Errorf("no member %s", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	type outcome struct {
		value kind.Value
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := target.Call(args...)
		done <- outcome{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Warn("Method call abandoned", "session", s.ID, "name", name, "timeout", timeout)
		return nil, fmt.Errorf("computation of %s timed out after %s", name, timeout)
	case result := <-done:
		if result.err != nil {
			return nil, fmt.Errorf("computation of %s failed: %v", name, result.err)
		}
		s.SetValue(result.value)
		return result.value, nil
	}
}
