package appliers

import (
	"fmt"

	vs "github.com/reoring/valueschema"
)

// ConvertFunc produces the final representation of an adjusted value.
type ConvertFunc func(v any) (any, error)

// ConverterConfig is the slot of Converter.
type ConverterConfig struct {
	Fn ConvertFunc
}

// Converter runs last in every built-in kind so all constraints observe the
// pre-conversion value. A failing ConvertFunc yields CauseConverter wrapping its error.
//
// Features: convert(fn) where fn is a ConvertFunc, func(any) (any, error) or func(any) any
var Converter = vs.NewApplier[ConverterConfig]("converter", func(c *ConverterConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if c.Fn == nil {
		return false, nil
	}
	out, err := c.Fn(v.Output)
	if err != nil {
		ae := vs.Raise(vs.CauseConverter, v, ks)
		ae.Err = err
		return false, ae
	}
	v.Output = out
	return false, nil
}).
	Feature("convert", func(c *ConverterConfig, args ...any) error {
		if err := arity(args, 1, 1); err != nil {
			return err
		}
		switch fn := args[0].(type) {
		case ConvertFunc:
			c.Fn = fn
		case func(any) (any, error):
			c.Fn = fn
		case func(any) any:
			c.Fn = func(v any) (any, error) { return fn(v), nil }
		default:
			return fmt.Errorf("expected converter function, got %T", args[0])
		}
		if c.Fn == nil {
			return fmt.Errorf("nil converter function")
		}
		return nil
	})
