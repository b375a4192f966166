package appliers

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// IntegerMode selects how NumberType treats non-integral numbers.
type IntegerMode int

const (
	IntegerAny    IntegerMode = iota // no integer constraint
	IntegerStrict                    // fail with CauseType
	IntegerTrunc                     // round toward zero
	IntegerFloor
	IntegerCeil
	IntegerRound // half away from zero
)

var integerModes = map[string]IntegerMode{
	"strict": IntegerStrict,
	"trunc":  IntegerTrunc,
	"floor":  IntegerFloor,
	"ceil":   IntegerCeil,
	"round":  IntegerRound,
}

// NumberConfig is the slot of NumberType.
type NumberConfig struct {
	Strict         bool
	SpecialFormats bool // accept "1e+10", "0x100", "0o17", "0b101" strings
	Integer        IntegerMode
}

var (
	decimalFormat = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	integerFormat = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// maxExactInteger is the largest magnitude below which float64 holds every integer.
const maxExactInteger = 1 << 53

// NumberType requires a finite number and outputs it as float64. Integers beyond ±2^53 are
// output as int64 so they stay exact; in integer mode, integers outside int64 fail with
// CauseType. Unless strict, decimal strings and booleans are converted.
//
// Features: strict(), acceptSpecialFormats(), integer([mode])
var NumberType = vs.NewApplier[NumberConfig]("numberType", func(c *NumberConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if n, wide, fits := wideInteger(c, v.Output); wide {
		if fits {
			v.Output = n
			return false, nil
		}
		if c.Integer != IntegerAny {
			return false, vs.Raise(vs.CauseType, v, ks)
		}
	}
	f, ok := toNumber(c, v.Output)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	if c.Integer != IntegerAny && f != math.Trunc(f) {
		switch c.Integer {
		case IntegerTrunc:
			f = math.Trunc(f)
		case IntegerFloor:
			f = math.Floor(f)
		case IntegerCeil:
			f = math.Ceil(f)
		case IntegerRound:
			f = math.Round(f)
		default:
			return false, vs.Raise(vs.CauseType, v, ks)
		}
	}
	v.Output = f
	return false, nil
}).
	Feature("strict", func(c *NumberConfig, args ...any) error {
		if err := arity(args, 0, 0); err != nil {
			return err
		}
		c.Strict = true
		return nil
	}).
	Feature("acceptSpecialFormats", func(c *NumberConfig, args ...any) error {
		if err := arity(args, 0, 0); err != nil {
			return err
		}
		c.SpecialFormats = true
		return nil
	}).
	Feature("integer", featureInteger).
	Describe(func(c *NumberConfig, s *js.Schema) {
		s.Type = "number"
		if c.Integer != IntegerAny {
			s.Type = "integer"
		}
	})

// featureInteger accepts no argument (strict), a bool (true: truncate), an IntegerMode,
// or a mode name.
func featureInteger(c *NumberConfig, args ...any) error {
	if err := arity(args, 0, 1); err != nil {
		return err
	}
	if len(args) == 0 {
		c.Integer = IntegerStrict
		return nil
	}
	switch t := args[0].(type) {
	case bool:
		c.Integer = IntegerStrict
		if t {
			c.Integer = IntegerTrunc
		}
	case IntegerMode:
		c.Integer = t
	case string:
		m, ok := integerModes[t]
		if !ok {
			return fmt.Errorf("unknown integer mode %q", t)
		}
		c.Integer = m
	default:
		return fmt.Errorf("expected bool, IntegerMode or mode name, got %T", args[0])
	}
	return nil
}

// wideInteger reports integer input whose magnitude exceeds maxExactInteger. fits is false
// when the integer does not fit int64 either.
func wideInteger(c *NumberConfig, v any) (n int64, wide, fits bool) {
	switch t := v.(type) {
	case int64:
		n = t
	case int:
		n = int64(t)
	case uint64:
		if t > math.MaxInt64 {
			return 0, true, false
		}
		n = int64(t)
	case json.Number:
		return parseWideInteger(string(t))
	case string:
		if c.Strict {
			return 0, false, false
		}
		return parseWideInteger(strings.TrimSpace(t))
	default:
		return 0, false, false
	}
	return n, n > maxExactInteger || n < -maxExactInteger, true
}

func parseWideInteger(s string) (int64, bool, bool) {
	if !integerFormat.MatchString(s) {
		return 0, false, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// digits only, so the error is a range error
		return 0, true, false
	}
	return n, n > maxExactInteger || n < -maxExactInteger, true
}

func toNumber(c *NumberConfig, v any) (float64, bool) {
	if f, ok := toFloat(v); ok {
		return f, true
	}
	if c.Strict {
		return 0, false
	}
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		return parseNumber(strings.TrimSpace(t), c.SpecialFormats)
	default:
		return 0, false
	}
}

func parseNumber(s string, special bool) (float64, bool) {
	if decimalFormat.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	if !special {
		return 0, false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return float64(i), true
	}
	return 0, false
}

// BoundConfig is the slot of MinValue and MaxValue.
type BoundConfig struct {
	Set    bool
	Value  float64
	Adjust bool // clamp instead of failing
}

// MinValue fails with CauseMinValue below the bound, or clamps when configured to adjust.
//
// Features: minValue(n[, adjust])
var MinValue = vs.NewApplier[BoundConfig]("minValue", func(c *BoundConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	f, ok := toFloat(v.Output)
	if !c.Set || !ok || f >= c.Value {
		return false, nil
	}
	if !c.Adjust {
		return false, vs.Raise(vs.CauseMinValue, v, ks)
	}
	v.Output = c.Value
	return false, nil
}).
	Feature("minValue", featureBound).
	Describe(func(c *BoundConfig, s *js.Schema) {
		if c.Set {
			n := c.Value
			s.Minimum = &n
		}
	})

// MaxValue fails with CauseMaxValue above the bound, or clamps when configured to adjust.
//
// Features: maxValue(n[, adjust])
var MaxValue = vs.NewApplier[BoundConfig]("maxValue", func(c *BoundConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	f, ok := toFloat(v.Output)
	if !c.Set || !ok || f <= c.Value {
		return false, nil
	}
	if !c.Adjust {
		return false, vs.Raise(vs.CauseMaxValue, v, ks)
	}
	v.Output = c.Value
	return false, nil
}).
	Feature("maxValue", featureBound).
	Describe(func(c *BoundConfig, s *js.Schema) {
		if c.Set {
			n := c.Value
			s.Maximum = &n
		}
	})

func featureBound(c *BoundConfig, args ...any) error {
	if err := arity(args, 1, 2); err != nil {
		return err
	}
	f, err := argFloat(args, 0)
	if err != nil {
		return err
	}
	adjust, err := argBool(args, 1, false)
	if err != nil {
		return err
	}
	c.Set, c.Value, c.Adjust = true, f, adjust
	return nil
}
