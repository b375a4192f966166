package valueschema

import (
	"fmt"
	"sort"
	"sync"

	js "github.com/reoring/valueschema/jsonschema"
)

// Kind is the shape shared by every Schema of one sort: a fixed, ordered list of appliers
// and the table of configuration features they contribute. A Kind holds no configuration.
type Kind struct {
	name     string
	steps    []Step
	index    map[Step]int
	features map[string]int // feature name -> step position
	presets  []func(s *Schema)
}

// DefineKind fixes the applier order for a kind. The order is part of the kind's contract:
// for example a default must be substituted before the type check so the default is checked
// too. DefineKind panics when a step is listed twice or two steps register the same feature.
func DefineKind(name string, steps ...Step) *Kind {
	k := &Kind{
		name:     name,
		steps:    append([]Step(nil), steps...),
		index:    make(map[Step]int, len(steps)),
		features: map[string]int{},
	}
	for i, st := range k.steps {
		if _, dup := k.index[st]; dup {
			panic(fmt.Sprintf("valueschema: kind %s lists applier %s twice", name, st.Name()))
		}
		k.index[st] = i
		for _, f := range st.featureNames() {
			if j, dup := k.features[f]; dup {
				panic(fmt.Sprintf("valueschema: kind %s: feature %q provided by both %s and %s", name, f, k.steps[j].Name(), st.Name()))
			}
			k.features[f] = i
		}
	}
	return k
}

// Name returns the kind name.
func (k *Kind) Name() string { return k.name }

// Features lists the configuration features available on schemas of this kind.
func (k *Kind) Features() []string {
	out := make([]string, 0, len(k.features))
	for f := range k.features {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Steps returns the applier names in execution order.
func (k *Kind) Steps() []string {
	out := make([]string, len(k.steps))
	for i, st := range k.steps {
		out[i] = st.Name()
	}
	return out
}

// Preset registers configuration applied to every new Schema of this kind, after the
// slots are initialized. Presets run per instance; they never share slot contents.
func (k *Kind) Preset(f func(s *Schema)) *Kind {
	k.presets = append(k.presets, f)
	return k
}

// New creates a Schema of this kind with one freshly initialized slot per applier.
func (k *Kind) New() *Schema {
	s := &Schema{kind: k, slots: make([]any, len(k.steps))}
	for i, st := range k.steps {
		s.slots[i] = st.newSlot()
	}
	for _, p := range k.presets {
		p(s)
	}
	return s
}

// ---- kind registry ----

var (
	kindsMu sync.RWMutex
	kinds   = map[string]*Kind{}
)

// RegisterKind makes k available to LookupKind under its name.
func RegisterKind(k *Kind) error {
	if k == nil || k.name == "" {
		return fmt.Errorf("valueschema: cannot register unnamed kind")
	}
	kindsMu.Lock()
	defer kindsMu.Unlock()
	if _, dup := kinds[k.name]; dup {
		return fmt.Errorf("valueschema: kind %q already registered", k.name)
	}
	kinds[k.name] = k
	return nil
}

// LookupKind returns the registered kind named name.
func LookupKind(name string) (*Kind, bool) {
	kindsMu.RLock()
	k, ok := kinds[name]
	kindsMu.RUnlock()
	return k, ok
}

// KindNames lists registered kinds in ascending order.
func KindNames() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	out := make([]string, 0, len(kinds))
	for n := range kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ---- Schema ----

// Schema is one configured instance of a Kind. Configure it before first use; afterwards
// Adjust only reads the slots, so a Schema may be shared across goroutines.
type Schema struct {
	kind  *Kind
	slots []any // slots[i] belongs to kind.steps[i]
}

// Kind returns the schema's kind.
func (s *Schema) Kind() *Kind { return s.kind }

// Base returns s. Builders that embed *Schema expose it through this method.
func (s *Schema) Base() *Schema { return s }

// Call invokes the named configuration feature on this schema only.
func (s *Schema) Call(feature string, args ...any) error {
	i, ok := s.kind.features[feature]
	if !ok {
		return fmt.Errorf("valueschema: kind %s has no feature %q", s.kind.name, feature)
	}
	return s.kind.steps[i].callFeature(s.slots[i], feature, args)
}

// With is the chaining form of Call. It panics when the feature is unknown or rejects its
// arguments.
func (s *Schema) With(feature string, args ...any) *Schema {
	if err := s.Call(feature, args...); err != nil {
		panic(err)
	}
	return s
}

// Configure runs f against this schema's slot for applier a. It panics when a is not part
// of the schema's kind.
func Configure[C any](s *Schema, a *Applier[C], f func(c *C)) *Schema {
	c, ok := ConfigOf(s, a)
	if !ok {
		panic(fmt.Sprintf("valueschema: kind %s does not use applier %s", s.kind.name, a.Name()))
	}
	f(c)
	return s
}

// ConfigOf returns this schema's configuration for applier a.
func ConfigOf[C any](s *Schema, a *Applier[C]) (*C, bool) {
	i, ok := s.kind.index[a]
	if !ok {
		return nil, false
	}
	return s.slots[i].(*C), true
}

// Adjust runs the pipeline over value. Failures are routed to the last handler in onError
// (OnErrorDefault when none), whose result is returned.
func (s *Schema) Adjust(value any, onError ...ErrorHandler) (any, error) {
	return s.applyTo(value, pickHandler(onError), nil)
}

// applyTo is the single-value primitive shared by Adjust, the composites and the top-level
// Adjust. ks is the path of value from the caller's root.
func (s *Schema) applyTo(value any, onError ErrorHandler, ks KeyStack) (any, error) {
	v := newValues(value)
	if err := s.run(v, ks); err != nil {
		ae, ok := AsAdjustmentError(err)
		if !ok {
			return nil, err
		}
		if e := debugEvent(); e != nil {
			e.Str("kind", s.kind.name).Str("cause", string(ae.Cause)).Str("path", ae.KeyStack.Pointer()).Msg("adjustment failed")
		}
		return onError(ae)
	}
	return v.Output, nil
}

func (s *Schema) run(v *Values, ks KeyStack) error {
	for i, st := range s.kind.steps {
		done, err := st.applyTo(s.slots[i], v, ks)
		if err != nil {
			return err
		}
		if done {
			if e := debugEvent(); e != nil {
				e.Str("kind", s.kind.name).Str("applier", st.Name()).Str("path", ks.Pointer()).Msg("short-circuit")
			}
			return nil
		}
	}
	return nil
}

// JSONSchema projects the configured schema into JSON Schema.
func (s *Schema) JSONSchema() *js.Schema {
	out := &js.Schema{}
	for i, st := range s.kind.steps {
		st.describeTo(s.slots[i], out)
	}
	return out
}
