package appliers

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
)

// Feature arguments arrive either from typed builders or from decoded YAML/JSON
// definitions, so numeric arguments accept every Go number type plus json.Number.

func arity(args []any, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("expected %d arguments, got %d", lo, len(args))
		}
		return fmt.Errorf("expected %d to %d arguments, got %d", lo, hi, len(args))
	}
	return nil
}

func argBool(args []any, i int, def bool) (bool, error) {
	if i >= len(args) {
		return def, nil
	}
	b, ok := args[i].(bool)
	if !ok {
		return false, fmt.Errorf("argument %d: expected bool, got %T", i, args[i])
	}
	return b, nil
}

func argFloat(args []any, i int) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("argument %d: missing", i)
	}
	f, ok := toFloat(args[i])
	if !ok {
		return 0, fmt.Errorf("argument %d: expected number, got %T", i, args[i])
	}
	return f, nil
}

func argInt(args []any, i int) (int, error) {
	f, err := argFloat(args, i)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < 0 {
		return 0, fmt.Errorf("argument %d: expected non-negative integer, got %v", i, args[i])
	}
	return int(f), nil
}

func argString(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("argument %d: missing", i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
	return s, nil
}

// argRegexp accepts a compiled *regexp.Regexp or a pattern string.
func argRegexp(args []any, i int) (*regexp.Regexp, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("argument %d: missing", i)
	}
	switch t := args[i].(type) {
	case *regexp.Regexp:
		if t == nil {
			return nil, fmt.Errorf("argument %d: nil regexp", i)
		}
		return t, nil
	case string:
		re, err := regexp.Compile(t)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		return re, nil
	default:
		return nil, fmt.Errorf("argument %d: expected regexp or string, got %T", i, args[i])
	}
}

// toFloat converts Go numbers and json.Number to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
