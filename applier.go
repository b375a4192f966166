package valueschema

import (
	"fmt"
	"sort"

	js "github.com/reoring/valueschema/jsonschema"
)

// ApplyFunc is one pipeline stage. It may replace v.Output. Returning done=true ends the
// adjustment for this value; a non-nil error (normally *AdjustmentError) aborts it.
type ApplyFunc[C any] func(c *C, v *Values, ks KeyStack) (done bool, err error)

// Feature is a named configuration method. It mutates only the slot of the schema it was
// called on.
type Feature[C any] func(c *C, args ...any) error

// Applier couples an ApplyFunc with the per-instance configuration type C.
//
// Appliers are built once (usually as package-level variables) and then shared by every
// Kind that lists them; the configuration lives in per-Schema slots, never in the Applier.
type Applier[C any] struct {
	name     string
	apply    ApplyFunc[C]
	init     func(c *C)
	features map[string]Feature[C]
	describe func(c *C, s *js.Schema)
}

// NewApplier returns an Applier named name that runs apply.
func NewApplier[C any](name string, apply ApplyFunc[C]) *Applier[C] {
	return &Applier[C]{name: name, apply: apply, features: map[string]Feature[C]{}}
}

// Init registers the initializer run on every fresh slot.
func (a *Applier[C]) Init(init func(c *C)) *Applier[C] {
	a.init = init
	return a
}

// Feature registers a named configuration method.
func (a *Applier[C]) Feature(name string, f Feature[C]) *Applier[C] {
	a.features[name] = f
	return a
}

// Describe registers a JSON Schema projection for this applier's configuration.
func (a *Applier[C]) Describe(f func(c *C, s *js.Schema)) *Applier[C] {
	a.describe = f
	return a
}

// Name returns the applier name used in logs.
func (a *Applier[C]) Name() string { return a.name }

// Step is the type-erased view of an Applier used by Kind.
// It can only be implemented by *Applier[C].
type Step interface {
	Name() string
	newSlot() any
	applyTo(slot any, v *Values, ks KeyStack) (bool, error)
	featureNames() []string
	callFeature(slot any, name string, args []any) error
	describeTo(slot any, s *js.Schema)
}

var _ Step = (*Applier[struct{}])(nil)

func (a *Applier[C]) newSlot() any {
	c := new(C)
	if a.init != nil {
		a.init(c)
	}
	return c
}

func (a *Applier[C]) applyTo(slot any, v *Values, ks KeyStack) (bool, error) {
	return a.apply(slot.(*C), v, ks)
}

func (a *Applier[C]) featureNames() []string {
	names := make([]string, 0, len(a.features))
	for n := range a.features {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (a *Applier[C]) callFeature(slot any, name string, args []any) error {
	f, ok := a.features[name]
	if !ok {
		return fmt.Errorf("valueschema: applier %s has no feature %q", a.name, name)
	}
	if err := f(slot.(*C), args...); err != nil {
		return fmt.Errorf("valueschema: %s(): %w", name, err)
	}
	return nil
}

func (a *Applier[C]) describeTo(slot any, s *js.Schema) {
	if a.describe != nil {
		a.describe(slot.(*C), s)
	}
}
