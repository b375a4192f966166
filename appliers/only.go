package appliers

import (
	"fmt"
	"reflect"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// OnlyConfig is the slot of Only.
type OnlyConfig struct {
	Values []any // accepted values; empty disables the check
}

// Only accepts nothing but the listed values (CauseOnly).
//
// Features: only(values...)
var Only = vs.NewApplier[OnlyConfig]("only", func(c *OnlyConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if len(c.Values) == 0 {
		return false, nil
	}
	for _, want := range c.Values {
		if equalValues(v.Output, want) {
			return false, nil
		}
	}
	return false, vs.Raise(vs.CauseOnly, v, ks)
}).
	Feature("only", func(c *OnlyConfig, args ...any) error {
		if len(args) == 0 {
			return fmt.Errorf("expected at least one value")
		}
		c.Values = append([]any(nil), args...)
		return nil
	}).
	Describe(func(c *OnlyConfig, s *js.Schema) {
		if len(c.Values) > 0 {
			s.Enum = append([]any(nil), c.Values...)
		}
	})

// equalValues compares numbers by value regardless of their Go type.
func equalValues(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}
