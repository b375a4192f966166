package appliers

import (
	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// ReplaceConfig is the slot of IfUndefined, IfNull and IfEmptyString.
type ReplaceConfig struct {
	Set   bool // replacement configured
	Value any  // replacement value
}

// IfUndefined substitutes a default for an Undefined (missing) value, or fails with
// CauseRequired. A non-nil default continues through the pipeline so later appliers check
// it; a nil default is final, and an Undefined default keeps the value missing so
// record-level callers omit it.
//
// Features: default(value)
var IfUndefined = vs.NewApplier[ReplaceConfig]("ifUndefined", func(c *ReplaceConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if !vs.IsUndefined(v.Output) {
		return false, nil
	}
	if !c.Set {
		return false, vs.Raise(vs.CauseRequired, v, ks)
	}
	v.Output = c.Value
	return c.Value == nil || vs.IsUndefined(c.Value), nil
}).
	Feature("default", func(c *ReplaceConfig, args ...any) error {
		if err := arity(args, 1, 1); err != nil {
			return err
		}
		c.Set, c.Value = true, args[0]
		return nil
	}).
	Describe(func(c *ReplaceConfig, s *js.Schema) {
		if c.Set && !vs.IsUndefined(c.Value) {
			s.Default = c.Value
		}
	})

// IfNull replaces null with the configured value (final), or fails with CauseNull.
//
// Features: acceptNull([value])
var IfNull = vs.NewApplier[ReplaceConfig]("ifNull", func(c *ReplaceConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if v.Output != nil {
		return false, nil
	}
	if !c.Set {
		return false, vs.Raise(vs.CauseNull, v, ks)
	}
	v.Output = c.Value
	return true, nil
}).
	Feature("acceptNull", featureReplace).
	Describe(func(c *ReplaceConfig, s *js.Schema) {
		if c.Set && c.Value == nil {
			s.Nullable = true
		}
	})

// IfEmptyString replaces "" with the configured value (final), or fails with CauseEmpty.
//
// Features: acceptEmptyString([value])
var IfEmptyString = vs.NewApplier[ReplaceConfig]("ifEmptyString", func(c *ReplaceConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if s, ok := v.Output.(string); !ok || s != "" {
		return false, nil
	}
	if !c.Set {
		return false, vs.Raise(vs.CauseEmpty, v, ks)
	}
	v.Output = c.Value
	return true, nil
}).
	Feature("acceptEmptyString", featureReplace)

// featureReplace configures an optional replacement value (nil when omitted).
func featureReplace(c *ReplaceConfig, args ...any) error {
	if err := arity(args, 0, 1); err != nil {
		return err
	}
	c.Set, c.Value = true, nil
	if len(args) == 1 {
		c.Value = args[0]
	}
	return nil
}
