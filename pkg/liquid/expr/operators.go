package expr

import (
	"fmt"
	"strings"
)

// IsComparator reports whether tok is a recognized comparison operator.
// Operators are matched as literal tokens, not identifiers.
func IsComparator(tok string) bool {
	switch tok {
	case "==", "!=", "<", ">", "<=", ">=", "contains":
		return true
	}
	return false
}

// Compare applies a comparison operator to two resolved values.
// Returns ErrUnknownOperator for operators outside the recognized set.
func Compare(left, right any, op string) (bool, error) {
	switch op {
	case "==":
		return compareEquals(left, right), nil
	case "!=":
		return !compareEquals(left, right), nil
	case "<":
		return compareOrder(left, right, func(l, r float64) bool { return l < r },
			func(l, r string) bool { return l < r }), nil
	case ">":
		return compareOrder(left, right, func(l, r float64) bool { return l > r },
			func(l, r string) bool { return l > r }), nil
	case "<=":
		return compareOrder(left, right, func(l, r float64) bool { return l <= r },
			func(l, r string) bool { return l <= r }), nil
	case ">=":
		return compareOrder(left, right, func(l, r float64) bool { return l >= r },
			func(l, r string) bool { return l >= r }), nil
	case "contains":
		return compareContains(left, right), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// compareEquals compares numerically when both sides are numeric,
// otherwise by string representation.
func compareEquals(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if lf, lok := ToFloat64(left); lok {
		if rf, rok := ToFloat64(right); rok {
			return lf == rf
		}
	}
	return stringify(left) == stringify(right)
}

// compareOrder compares lexicographically when both sides are strings,
// otherwise numerically.
func compareOrder(left, right any, num func(l, r float64) bool, str func(l, r string) bool) bool {
	ls, lok := left.(string)
	rs, rok := right.(string)
	if lok && rok {
		return str(ls, rs)
	}
	lf, _ := ToFloat64(left)
	rf, _ := ToFloat64(right)
	return num(lf, rf)
}

// compareContains checks substring containment for strings, element
// membership for slices, and key presence for maps.
func compareContains(left, right any) bool {
	switch v := left.(type) {
	case string:
		return strings.Contains(v, stringify(right))
	case []any:
		for _, item := range v {
			if compareEquals(item, right) {
				return true
			}
		}
	case []string:
		for _, item := range v {
			if compareEquals(item, right) {
				return true
			}
		}
	case map[string]any:
		_, ok := v[stringify(right)]
		return ok
	}
	return false
}
