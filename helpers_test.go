package valueschema_test

import (
	"errors"

	vs "github.com/reoring/valueschema"
)

type suffixConfig struct{ Suffix string }

// suffixApplier appends its configured suffix (default: its own name) to string outputs.
func suffixApplier(name string) *vs.Applier[suffixConfig] {
	return vs.NewApplier[suffixConfig](name, func(c *suffixConfig, v *vs.Values, _ vs.KeyStack) (bool, error) {
		s, _ := v.Output.(string)
		v.Output = s + c.Suffix
		return false, nil
	}).
		Init(func(c *suffixConfig) { c.Suffix = name }).
		Feature(name+"Suffix", func(c *suffixConfig, args ...any) error {
			if len(args) != 1 {
				return errors.New("want one argument")
			}
			s, ok := args[0].(string)
			if !ok {
				return errors.New("want string")
			}
			c.Suffix = s
			return nil
		})
}

type matchConfig struct{ On any }

// failOn raises CausePattern when the output equals the configured value.
var failOn = vs.NewApplier[matchConfig]("failOn", func(c *matchConfig, v *vs.Values, ks vs.KeyStack) (bool, error) {
	if c.On != nil && v.Output == c.On {
		return false, vs.Raise(vs.CausePattern, v, ks)
	}
	return false, nil
}).Feature("failOn", func(c *matchConfig, args ...any) error {
	c.On = args[0]
	return nil
})

// stopOn short-circuits when the output equals the configured value.
var stopOn = vs.NewApplier[matchConfig]("stopOn", func(c *matchConfig, v *vs.Values, _ vs.KeyStack) (bool, error) {
	return c.On != nil && v.Output == c.On, nil
}).Feature("stopOn", func(c *matchConfig, args ...any) error {
	c.On = args[0]
	return nil
})

type counterConfig struct{ N *int }

var counter = vs.NewApplier[counterConfig]("counter", func(c *counterConfig, _ *vs.Values, _ vs.KeyStack) (bool, error) {
	if c.N != nil {
		*c.N++
	}
	return false, nil
}).Feature("count", func(c *counterConfig, args ...any) error {
	c.N = args[0].(*int)
	return nil
})

var errBoom = errors.New("boom")

// boom returns a plain error, not an *AdjustmentError.
var boom = vs.NewApplier[struct{}]("boom", func(_ *struct{}, v *vs.Values, _ vs.KeyStack) (bool, error) {
	if v.Output == "boom" {
		return false, errBoom
	}
	return false, nil
})
