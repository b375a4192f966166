package appliers

import (
	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// ArrayType requires an array and outputs it as []any. A string is split when a separator
// is configured; any other value is wrapped when toArray is enabled.
//
// Features: toArray(), separatedBy(sep)
var ArrayType = vs.NewApplier[SeparatorConfig]("arrayType", func(c *SeparatorConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if arr, ok := vs.AsArray(v.Output); ok {
		v.Output = arr
		return false, nil
	}
	if s, ok := v.Output.(string); ok && c.Sep != nil {
		parts := c.Sep.Split(s, -1)
		arr := make([]any, len(parts))
		for i, p := range parts {
			arr[i] = p
		}
		v.Output = arr
		return false, nil
	}
	if c.ToArray {
		v.Output = []any{v.Output}
		return false, nil
	}
	return false, vs.Raise(vs.CauseType, v, ks)
}).
	Feature("toArray", func(c *SeparatorConfig, args ...any) error {
		if err := arity(args, 0, 0); err != nil {
			return err
		}
		c.ToArray = true
		return nil
	}).
	Feature("separatedBy", featureSeparator).
	Describe(func(_ *SeparatorConfig, s *js.Schema) { s.Type = "array" })

// ArrayMinLength fails with CauseMinLength when an array has fewer elements than configured.
//
// Features: minLength(n)
var ArrayMinLength = vs.NewApplier[LengthConfig]("arrayMinLength", func(c *LengthConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	arr, ok := v.Output.([]any)
	if c.Set && ok && len(arr) < c.Length {
		return false, vs.Raise(vs.CauseMinLength, v, ks)
	}
	return false, nil
}).
	Feature("minLength", featureMinLength).
	Describe(func(c *LengthConfig, s *js.Schema) {
		if c.Set {
			n := c.Length
			s.MinItems = &n
		}
	})

// ArrayMaxLength fails with CauseMaxLength when an array has more elements than configured,
// or keeps the leading elements when configured to adjust.
//
// Features: maxLength(n[, adjust])
var ArrayMaxLength = vs.NewApplier[LengthConfig]("arrayMaxLength", func(c *LengthConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	arr, ok := v.Output.([]any)
	if !c.Set || !ok || len(arr) <= c.Length {
		return false, nil
	}
	if !c.Adjust {
		return false, vs.Raise(vs.CauseMaxLength, v, ks)
	}
	v.Output = append([]any(nil), arr[:c.Length]...)
	return false, nil
}).
	Feature("maxLength", featureMaxLength).
	Describe(func(c *LengthConfig, s *js.Schema) {
		if c.Set {
			n := c.Length
			s.MaxItems = &n
		}
	})

// ObjectType requires an object and outputs it as map[string]any.
var ObjectType = vs.NewApplier[struct{}]("objectType", func(_ *struct{}, v *vs.Values, ks vs.KeyStack) (bool, error) {
	m, ok := vs.AsObject(v.Output)
	if !ok {
		return false, vs.Raise(vs.CauseType, v, ks)
	}
	v.Output = m
	return false, nil
}).
	Describe(func(_ *struct{}, s *js.Schema) { s.Type = "object" })
