package appliers

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// TypeConfig is the slot of the type appliers that only toggle strictness.
type TypeConfig struct {
	Strict bool // reject values that would need coercion
}

// StringType requires a string. Unless strict, numbers and booleans are converted to
// their decimal / "true" / "false" text.
//
// Features: strict()
var StringType = vs.NewApplier[TypeConfig]("stringType", func(c *TypeConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if _, ok := v.Output.(string); ok {
		return false, nil
	}
	if c.Strict {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	s, ok := stringify(v.Output)
	if !ok {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	v.Output = s
	return false, nil
}).
	Feature("strict", featureStrict).
	Describe(func(_ *TypeConfig, s *js.Schema) { s.Type = "string" })

func featureStrict(c *TypeConfig, args ...any) error {
	if err := arity(args, 0, 0); err != nil {
		return err
	}
	c.Strict = true
	return nil
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(t).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(t).Uint(), 10), true
	default:
		return "", false
	}
}

// FlagConfig is the slot of appliers switched on by a feature without arguments.
type FlagConfig struct {
	Enabled bool
}

// Trim removes leading and trailing white space from string outputs.
//
// Features: trim()
var Trim = vs.NewApplier[FlagConfig]("trim", func(c *FlagConfig, v *vs.Values, _ vs.KeyStack) (bool, error) {
	if !c.Enabled {
		return false, nil
	}
	if s, ok := v.Output.(string); ok {
		v.Output = strings.TrimSpace(s)
	}
	return false, nil
}).
	Feature("trim", featureFlag)

func featureFlag(c *FlagConfig, args ...any) error {
	if err := arity(args, 0, 0); err != nil {
		return err
	}
	c.Enabled = true
	return nil
}

// LengthConfig is the slot of the min/max length appliers.
type LengthConfig struct {
	Set    bool
	Length int
	Adjust bool // maxLength only: truncate instead of failing
}

// StringMinLength fails with CauseMinLength when a string has fewer runes than configured.
//
// Features: minLength(n)
var StringMinLength = vs.NewApplier[LengthConfig]("stringMinLength", func(c *LengthConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	s, ok := v.Output.(string)
	if !c.Set || !ok {
		return false, nil
	}
	if utf8.RuneCountInString(s) < c.Length {
		return false, vs.Raise(vs.CauseMinLength, v, ks)
	}
	return false, nil
}).
	Feature("minLength", featureMinLength).
	Describe(func(c *LengthConfig, s *js.Schema) {
		if c.Set {
			n := c.Length
			s.MinLength = &n
		}
	})

// StringMaxLength fails with CauseMaxLength when a string has more runes than configured,
// or truncates it when configured to adjust.
//
// Features: maxLength(n[, adjust])
var StringMaxLength = vs.NewApplier[LengthConfig]("stringMaxLength", func(c *LengthConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	s, ok := v.Output.(string)
	if !c.Set || !ok || utf8.RuneCountInString(s) <= c.Length {
		return false, nil
	}
	if !c.Adjust {
		return false, vs.Raise(vs.CauseMaxLength, v, ks)
	}
	v.Output = string([]rune(s)[:c.Length])
	return false, nil
}).
	Feature("maxLength", featureMaxLength).
	Describe(func(c *LengthConfig, s *js.Schema) {
		if c.Set {
			n := c.Length
			s.MaxLength = &n
		}
	})

func featureMinLength(c *LengthConfig, args ...any) error {
	if err := arity(args, 1, 1); err != nil {
		return err
	}
	n, err := argInt(args, 0)
	if err != nil {
		return err
	}
	c.Set, c.Length = true, n
	return nil
}

func featureMaxLength(c *LengthConfig, args ...any) error {
	if err := arity(args, 1, 2); err != nil {
		return err
	}
	n, err := argInt(args, 0)
	if err != nil {
		return err
	}
	adjust, err := argBool(args, 1, false)
	if err != nil {
		return err
	}
	c.Set, c.Length, c.Adjust = true, n, adjust
	return nil
}

// PatternConfig is the slot of Pattern.
type PatternConfig struct {
	Re *regexp.Regexp
}

// Pattern fails with CausePattern when a string output does not match.
//
// Features: pattern(re) where re is a *regexp.Regexp or a pattern string
var Pattern = vs.NewApplier[PatternConfig]("pattern", func(c *PatternConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if c.Re == nil {
		return false, nil
	}
	s, ok := v.Output.(string)
	if !ok || !c.Re.MatchString(s) {
		return false, vs.Raise(vs.CausePattern, v, ks)
	}
	return false, nil
}).
	Feature("pattern", func(c *PatternConfig, args ...any) error {
		if err := arity(args, 1, 1); err != nil {
			return err
		}
		re, err := argRegexp(args, 0)
		if err != nil {
			return err
		}
		c.Re = re
		return nil
	}).
	Describe(func(c *PatternConfig, s *js.Schema) {
		if c.Re != nil {
			s.Pattern = c.Re.String()
		}
	})
