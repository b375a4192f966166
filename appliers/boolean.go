package appliers

import (
	"strings"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// BooleanConfig is the slot of BooleanType.
type BooleanConfig struct {
	Strict     bool
	AllNumbers bool // any non-zero number is true
}

// BooleanType requires a bool. Unless strict, 0/1 (any number with acceptAllNumbers) and
// the strings "true"/"false" or numeric text are converted.
//
// Features: strict(), acceptAllNumbers()
var BooleanType = vs.NewApplier[BooleanConfig]("booleanType", func(c *BooleanConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if _, ok := v.Output.(bool); ok {
		return false, nil
	}
	if c.Strict {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	b, ok := toBool(c, v.Output)
	if !ok {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	v.Output = b
	return false, nil
}).
	Feature("strict", func(c *BooleanConfig, args ...any) error {
		if err := arity(args, 0, 0); err != nil {
			return err
		}
		c.Strict = true
		return nil
	}).
	Feature("acceptAllNumbers", func(c *BooleanConfig, args ...any) error {
		if err := arity(args, 0, 0); err != nil {
			return err
		}
		c.AllNumbers = true
		return nil
	}).
	Describe(func(_ *BooleanConfig, s *js.Schema) { s.Type = "boolean" })

func toBool(c *BooleanConfig, v any) (bool, bool) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		f, ok := parseNumber(strings.TrimSpace(s), false)
		if !ok {
			return false, false
		}
		return numberToBool(c, f)
	}
	if f, ok := toFloat(v); ok {
		return numberToBool(c, f)
	}
	return false, false
}

func numberToBool(c *BooleanConfig, f float64) (bool, bool) {
	switch {
	case f == 0:
		return false, true
	case f == 1:
		return true, true
	case c.AllNumbers:
		return true, true
	default:
		return false, false
	}
}
