package valueschema

import (
	"fmt"

	js "github.com/reoring/valueschema/jsonschema"
)

// EachConfig configures Each.
type EachConfig struct {
	Schema        *Schema // child schema applied to every element; nil disables Each
	IgnoresErrors bool    // drop failing elements instead of failing the array
}

// Each applies a child schema to every element of an array output.
//
// Features:
//
//	each(schema *Schema[, ignoresErrors bool])
var Each = NewApplier[EachConfig]("each", applyEach).
	Feature("each", featureEach).
	Describe(func(c *EachConfig, s *js.Schema) {
		if c.Schema != nil {
			s.Items = c.Schema.JSONSchema()
		}
	})

func featureEach(c *EachConfig, args ...any) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("expected (schema[, ignoresErrors]), got %d arguments", len(args))
	}
	child, ok := args[0].(*Schema)
	if !ok || child == nil {
		return fmt.Errorf("expected *Schema, got %T", args[0])
	}
	c.Schema = child
	c.IgnoresErrors = false
	if len(args) == 2 {
		b, ok := args[1].(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", args[1])
		}
		c.IgnoresErrors = b
	}
	return nil
}

func applyEach(c *EachConfig, v *Values, ks KeyStack) (bool, error) {
	if c.Schema == nil {
		return false, nil
	}
	arr, ok := AsArray(v.Output)
	if !ok {
		return false, Raise(CauseArray, v, ks)
	}

	adjusted := make([]any, 0, len(arr))
	for i, elem := range arr {
		ignored := false
		out, err := c.Schema.applyTo(elem, func(err *AdjustmentError) (any, error) {
			if c.IgnoresErrors {
				ignored = true
				return nil, nil
			}
			// the element's KeyStack already ends with i
			return nil, err
		}, ks.Append(i))
		if err != nil {
			return false, err
		}
		if ignored {
			continue
		}
		adjusted = append(adjusted, out)
	}
	v.Output = adjusted
	return false, nil
}
