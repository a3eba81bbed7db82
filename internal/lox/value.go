package lox

import (
	"fmt"
	"strconv"
)

// Runtime values are represented by one of: nil, bool, string, float32.
// Equality between values is Go's interface equality, so comparing values of
// different kinds is well-defined and simply unequal.

// stringify renders a value in its canonical text form. Numbers use the
// shortest decimal string that round-trips the 32-bit float.
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// isTruthy returns false only for nil and false.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isNumber returns true only for 32-bit floats.
func isNumber(value interface{}) bool {
	_, ok := value.(float32)
	return ok
}
