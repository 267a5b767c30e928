// Package literal parses and formats Python-style list literals at the CLI
// boundary. Input like "[1, None, 2.5, 'text', [3, 4]]" is evaluated with the
// Starlark interpreter, whose expression grammar matches the literal notation
// the tool accepts (None/True/False, single- or double-quoted strings, nested
// lists), then converted into plain Go values.
//
// The tagged value model is: int64 | float64 | string | bool | nil | []any.
package literal

import (
	"fmt"

	"go.starlark.net/starlark"
)

// ParseList evaluates src as a list literal and returns its elements as Go
// values. Tuples are accepted as lists. Anything else, including a bare
// scalar, is an error.
func ParseList(src string) ([]any, error) {
	v, err := eval(src)
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *starlark.List, starlark.Tuple:
		converted, err := toGo(v)
		if err != nil {
			return nil, err
		}
		return converted.([]any), nil
	default:
		return nil, fmt.Errorf("expected a list literal, got %s", val.Type())
	}
}

// ParseScalar evaluates src as a single scalar literal: an int, float,
// string, boolean, or None.
func ParseScalar(src string) (any, error) {
	v, err := eval(src)
	if err != nil {
		return nil, err
	}

	switch v.(type) {
	case starlark.NoneType, starlark.String, starlark.Int, starlark.Float, starlark.Bool:
		return toGo(v)
	default:
		return nil, fmt.Errorf("expected a scalar literal, got %s", v.Type())
	}
}

// eval evaluates a single Starlark expression with no globals beyond the
// universe (which supplies None, True, False, and builtins such as float).
func eval(src string) (starlark.Value, error) {
	thread := &starlark.Thread{Name: "literal"}
	v, err := starlark.Eval(thread, "input", src, starlark.StringDict{}) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
	if err != nil {
		return nil, fmt.Errorf("invalid literal %q: %w", src, err)
	}
	return v, nil
}

// toGo converts a Starlark value into the tagged Go value model.
func toGo(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(val), nil

	case starlark.Int:
		i64, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer out of range: %s", val.String())
		}
		return i64, nil

	case starlark.Float:
		return float64(val), nil

	case starlark.String:
		return string(val), nil

	case *starlark.List:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := toGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	case starlark.Tuple:
		result := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			gv, err := toGo(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("tuple index %d: %w", i, err)
			}
			result[i] = gv
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported literal type: %s", v.Type())
	}
}

// toStarlark converts a Go value back into a Starlark value for formatting.
func toStarlark(v any) (starlark.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlark.None, nil

	case bool:
		return starlark.Bool(val), nil

	case int:
		return starlark.MakeInt(val), nil

	case int64:
		return starlark.MakeInt64(val), nil

	case float64:
		return starlark.Float(val), nil

	case string:
		return starlark.String(val), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := toStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []int64:
		list := make([]starlark.Value, len(val))
		for i, n := range val {
			list[i] = starlark.MakeInt64(n)
		}
		return starlark.NewList(list), nil

	case []float64:
		list := make([]starlark.Value, len(val))
		for i, f := range val {
			list[i] = starlark.Float(f)
		}
		return starlark.NewList(list), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// Format renders a result value in the same literal notation the tool
// accepts: None for nil, True/False for booleans, double-quoted strings,
// floats always carrying a decimal point, and bracketed lists.
func Format(v any) (string, error) {
	sv, err := toStarlark(v)
	if err != nil {
		return "", err
	}
	return sv.String(), nil
}

// Floats coerces a parsed sequence to float64 values for the numeric
// transforms. Integers and booleans widen; strings, None, and nested lists
// are rejected so the core never sees an unvalidated sequence.
func Floats(values []any) ([]float64, error) {
	result := make([]float64, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case int64:
			result[i] = float64(val)
		case float64:
			result[i] = val
		case bool:
			if val {
				result[i] = 1
			}
		default:
			return nil, fmt.Errorf("element %d: expected a number, got %s", i, TypeName(v))
		}
	}
	return result, nil
}

// Number validates that a parsed scalar is an int or float, for option
// values like clip bounds.
func Number(v any) error {
	switch v.(type) {
	case int64, float64:
		return nil
	}
	return fmt.Errorf("expected a number, got %s", TypeName(v))
}

// TypeName returns the literal-notation name of a value's type, for error
// messages phrased in the caller's vocabulary rather than Go's.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "None"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}
