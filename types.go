package valueschema

import "reflect"

// UnknownPolicy controls how keys that no child schema declares are handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys.
	UnknownPassthrough                      // Copy unknown keys into the output unexamined.
)

// undefinedValue is the type of Undefined.
type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined marks an absent value: a missing record field, or a result that should be
// omitted by the caller. nil is reserved for an explicit null.
var Undefined any = undefinedValue{}

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// AsArray returns v as []any. Other slice and array kinds are copied element-wise.
func AsArray(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// AsObject returns v as map[string]any. Other maps keyed by strings are copied.
func AsObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
