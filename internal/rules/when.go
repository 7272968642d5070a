package rules

import (
	"fmt"
	"strconv"
	"strings"

	"mathscope/internal/kind"
)

// comparison operators recognized by the when grammar.
var operators = map[string]bool{
	"==": true,
	"<":  true,
	"<=": true,
	">":  true,
	">=": true,
}

// whenClause is one compiled predicate of a when / not-when list. A bare
// attribute name means "invoke with no arguments and require exactly true";
// the three-part form compares the invocation result against a right-hand
// side under one of == < <= > >=.
type whenClause struct {
	attr string
	op   string
	rhs  rhsOperand
}

// rhsOperand is the pre-resolved right-hand side of a comparison: either a
// literal or a namespace-resolved kind (compared by identity).
type rhsOperand struct {
	literal any
	k       *kind.Kind
}

// parseWhen compiles a when expression string. Returns an error for an
// unknown operator or malformed expression; the loader disables the whole
// context in that case.
func parseWhen(expr string, ns *kind.Namespace) (whenClause, error) {
	parts := strings.Fields(expr)
	switch len(parts) {
	case 0:
		return whenClause{}, fmt.Errorf("empty when expression")
	case 1:
		return whenClause{attr: parts[0]}, nil
	case 2:
		// Operator glued to the operand, e.g. "degree <=5".
		rest := parts[1]
		for _, width := range []int{2, 1} {
			if len(rest) > width && operators[rest[:width]] {
				return buildComparison(parts[0], rest[:width], rest[width:], ns)
			}
		}
		return whenClause{}, fmt.Errorf("unrecognized operator in %q", expr)
	case 3:
		if !operators[parts[1]] {
			return whenClause{}, fmt.Errorf("unrecognized operator %q", parts[1])
		}
		return buildComparison(parts[0], parts[1], parts[2], ns)
	default:
		return whenClause{}, fmt.Errorf("malformed when expression %q", expr)
	}
}

func buildComparison(attr, op, rhs string, ns *kind.Namespace) (whenClause, error) {
	operand, err := resolveOperand(rhs, ns)
	if err != nil {
		return whenClause{}, err
	}
	return whenClause{attr: attr, op: op, rhs: operand}, nil
}

// resolveOperand evaluates the right-hand side once, at load time: literals
// are parsed directly, anything else must resolve in the namespace.
func resolveOperand(s string, ns *kind.Namespace) (rhsOperand, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return rhsOperand{literal: n}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return rhsOperand{literal: f}, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return rhsOperand{literal: b}, nil
	}
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return rhsOperand{literal: s[1 : len(s)-1]}, nil
	}
	if ns != nil {
		if k, ok := ns.LookupKind(s); ok {
			return rhsOperand{k: k}, nil
		}
	}
	return rhsOperand{}, fmt.Errorf("unresolvable operand %q", s)
}

// eval invokes the clause's attribute on container with no arguments and
// applies the comparison, if any. Errors mean "this context does not match".
func (w whenClause) eval(container kind.Value) (bool, error) {
	result, err := invokeAttr(container, w.attr)
	if err != nil {
		return false, err
	}
	if w.op == "" {
		payload, ok := kind.Payload(result)
		if !ok {
			return false, fmt.Errorf("attribute %s result has no payload", w.attr)
		}
		b, ok := payload.(bool)
		if !ok {
			return false, fmt.Errorf("attribute %s is not a boolean test", w.attr)
		}
		return b, nil
	}
	if w.rhs.k != nil {
		if w.op != "==" {
			return false, fmt.Errorf("kind operands only support ==")
		}
		return result == kind.Value(w.rhs.k), nil
	}
	payload, ok := kind.Payload(result)
	if !ok {
		return false, fmt.Errorf("attribute %s result has no payload", w.attr)
	}
	return compare(payload, w.op, w.rhs.literal)
}

// invokeAttr binds the named attribute on container and, when callable,
// invokes it with no arguments.
func invokeAttr(container kind.Value, name string) (kind.Value, error) {
	var bound kind.Value
	if obj, ok := container.(*kind.Object); ok {
		if v, ok := obj.Attr(name); ok {
			bound = v
		}
	}
	if bound == nil {
		def, _, found := kind.Of(container).Resolve(name)
		if !found {
			return nil, fmt.Errorf("no attribute %s", name)
		}
		v, err := def.Bind(container)
		if err != nil {
			return nil, err
		}
		bound = v
	}
	if c, ok := bound.(kind.Callable); ok {
		return c.Call()
	}
	return bound, nil
}

// compare applies op between two native payloads. Numeric operands are
// normalized to float64; strings compare lexicographically; booleans and
// other comparable payloads only support equality.
func compare(left any, op string, right any) (bool, error) {
	if lf, lok := asFloat(left); lok {
		rf, rok := asFloat(right)
		if !rok {
			return false, fmt.Errorf("cannot compare number with %T", right)
		}
		switch op {
		case "==":
			return lf == rf, nil
		case "<":
			return lf < rf, nil
		case "<=":
			return lf <= rf, nil
		case ">":
			return lf > rf, nil
		case ">=":
			return lf >= rf, nil
		}
		return false, fmt.Errorf("unknown operator %q", op)
	}
	if ls, ok := left.(string); ok {
		rs, ok := right.(string)
		if !ok {
			return false, fmt.Errorf("cannot compare string with %T", right)
		}
		switch op {
		case "==":
			return ls == rs, nil
		case "<":
			return ls < rs, nil
		case "<=":
			return ls <= rs, nil
		case ">":
			return ls > rs, nil
		case ">=":
			return ls >= rs, nil
		}
		return false, fmt.Errorf("unknown operator %q", op)
	}
	if op == "==" {
		return left == right, nil
	}
	return false, fmt.Errorf("operands of type %T only support ==", left)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}
