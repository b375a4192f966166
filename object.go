package valueschema

import (
	"fmt"
	"sort"

	js "github.com/reoring/valueschema/jsonschema"
)

// PropertiesConfig configures Properties.
type PropertiesConfig struct {
	Properties map[string]*Schema // child schema per declared key; nil disables Properties
	Unknown    UnknownPolicy
	sortedKeys []string
}

// Properties applies one child schema per declared key of an object output. Outputs that
// are not objects are left for the kind's type check.
//
// Features:
//
//	schema(properties map[string]*Schema[, unknown UnknownPolicy])
var Properties = NewApplier[PropertiesConfig]("properties", applyProperties).
	Feature("schema", featureSchema).
	Describe(func(c *PropertiesConfig, s *js.Schema) {
		if c.Properties == nil {
			return
		}
		s.Properties = make(map[string]*js.Schema, len(c.Properties))
		for k, child := range c.Properties {
			s.Properties[k] = child.JSONSchema()
		}
		s.AdditionalProperties = c.Unknown == UnknownPassthrough
	})

func featureSchema(c *PropertiesConfig, args ...any) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("expected (properties[, unknown]), got %d arguments", len(args))
	}
	props, ok := args[0].(map[string]*Schema)
	if !ok {
		return fmt.Errorf("expected map[string]*Schema, got %T", args[0])
	}
	keys := make([]string, 0, len(props))
	for k, child := range props {
		if child == nil {
			return fmt.Errorf("nil schema for key %q", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	c.Properties = props
	c.sortedKeys = keys
	if len(args) == 2 {
		p, ok := args[1].(UnknownPolicy)
		if !ok {
			return fmt.Errorf("expected UnknownPolicy, got %T", args[1])
		}
		c.Unknown = p
	}
	return nil
}

func applyProperties(c *PropertiesConfig, v *Values, ks KeyStack) (bool, error) {
	if c.Properties == nil {
		return false, nil
	}
	src, ok := AsObject(v.Output)
	if !ok {
		return false, nil
	}

	out := make(map[string]any, len(src))
	for _, k := range c.sortedKeys {
		val, exists := src[k]
		if !exists {
			val = Undefined
		}
		adjusted, err := c.Properties[k].applyTo(val, OnErrorDefault, ks.Append(k))
		if err != nil {
			return false, err
		}
		if !IsUndefined(adjusted) {
			out[k] = adjusted
		}
	}
	if c.Unknown == UnknownPassthrough {
		for k, val := range src {
			if _, known := c.Properties[k]; !known {
				out[k] = val
			}
		}
	}
	v.Output = out
	return false, nil
}
