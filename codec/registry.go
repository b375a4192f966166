// Package codec provides named converters for the convert feature.
//
// Typed builders pass the functions directly; declarative definitions refer to them by
// name ({convert: rfc3339}), resolved through Lookup.
package codec

import (
	"fmt"
	"sort"
	"sync"

	"github.com/reoring/valueschema/appliers"
)

var (
	mu         sync.RWMutex
	converters = map[string]appliers.ConvertFunc{}
)

func init() {
	for name, fn := range map[string]appliers.ConvertFunc{
		"identity":         Identity(),
		"rfc3339":          TimeRFC3339(),
		"canonicalRFC3339": CanonicalRFC3339(),
	} {
		if err := Register(name, fn); err != nil {
			panic(err)
		}
	}
}

// Identity returns its input unchanged.
func Identity() appliers.ConvertFunc {
	return func(v any) (any, error) { return v, nil }
}

// Register makes fn available under name.
func Register(name string, fn appliers.ConvertFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("codec: name and converter are required")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := converters[name]; dup {
		return fmt.Errorf("codec: converter %q already registered", name)
	}
	converters[name] = fn
	return nil
}

// Lookup returns the converter registered under name.
func Lookup(name string) (appliers.ConvertFunc, bool) {
	mu.RLock()
	fn, ok := converters[name]
	mu.RUnlock()
	return fn, ok
}

// Names lists registered converters in ascending order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(converters))
	for n := range converters {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
