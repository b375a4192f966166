// Package definition builds schemas from declarative YAML or JSON documents.
//
//	fields:
//	  name:
//	    kind: string
//	    with: [trim, {minLength: 1}, {maxLength: [64, true]}]
//	  tags:
//	    kind: array
//	    with: [{separatedBy: ","}]
//	    each: {kind: string, with: [trim]}
//	    ignoreEachErrors: true
//	  address:
//	    kind: object
//	    unknown: passthrough
//	    properties:
//	      zip: {kind: numericString, with: [{separatedBy: "-"}]}
//
// Each with item is either a feature name or a single-key mapping from feature name to its
// argument. A list spreads into several arguments, so a list-valued argument is written as
// a nested list ({default: [[a, b]]}). Kinds are resolved through
// valueschema.LookupKind, so importing this package registers the built-in kinds.
// Converters are referenced by their codec registry name: {convert: rfc3339}.
package definition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/codec"
	_ "github.com/reoring/valueschema/dsl" // registers built-in kinds
)

var (
	// ErrUnknownKind is wrapped when a node names a kind that is not registered.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrInvalidNode is wrapped when a node is malformed.
	ErrInvalidNode = errors.New("invalid node")
)

// Document is a set of top-level fields for valueschema.Adjust.
type Document struct {
	Fields map[string]*Node `json:"fields" yaml:"fields"`
}

// Node describes one schema.
type Node struct {
	Kind             string           `json:"kind" yaml:"kind"`
	With             []any            `json:"with,omitempty" yaml:"with,omitempty"`
	Each             *Node            `json:"each,omitempty" yaml:"each,omitempty"`
	IgnoreEachErrors bool             `json:"ignoreEachErrors,omitempty" yaml:"ignoreEachErrors,omitempty"`
	Properties       map[string]*Node `json:"properties,omitempty" yaml:"properties,omitempty"`
	Unknown          string           `json:"unknown,omitempty" yaml:"unknown,omitempty"` // strip (default) or passthrough
}

// ParseYAML decodes a YAML document.
func ParseYAML(b []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("definition: parse yaml: %w", err)
	}
	return &d, nil
}

// ParseJSON decodes a JSON document.
func ParseJSON(b []byte) (*Document, error) {
	var d Document
	if err := j.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("definition: parse json: %w", err)
	}
	return &d, nil
}

// Load reads path and parses it as JSON when the extension is .json, YAML otherwise.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	if filepath.Ext(path) == ".json" {
		return ParseJSON(b)
	}
	return ParseYAML(b)
}

// Build creates one schema per field.
func (d *Document) Build() (map[string]*vs.Schema, error) {
	if d == nil || len(d.Fields) == 0 {
		return nil, fmt.Errorf("definition: %w: no fields", ErrInvalidNode)
	}
	names := make([]string, 0, len(d.Fields))
	for name := range d.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*vs.Schema, len(names))
	for _, name := range names {
		s, err := d.Fields[name].build(vs.KeyStack{name})
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

// Build creates the schema described by n.
func (n *Node) Build() (*vs.Schema, error) { return n.build(nil) }

func (n *Node) build(at vs.KeyStack) (*vs.Schema, error) {
	if n == nil {
		return nil, fmt.Errorf("definition: %s: %w: empty node", at.Pointer(), ErrInvalidNode)
	}
	k, ok := vs.LookupKind(n.Kind)
	if !ok {
		return nil, fmt.Errorf("definition: %s: %w %q", at.Pointer(), ErrUnknownKind, n.Kind)
	}
	s := k.New()

	for i, item := range n.With {
		feature, args, err := featureCall(item)
		if err != nil {
			return nil, fmt.Errorf("definition: %s: with[%d]: %w", at.Pointer(), i, err)
		}
		if feature == "convert" {
			if args, err = converterArgs(args); err != nil {
				return nil, fmt.Errorf("definition: %s: convert: %w", at.Pointer(), err)
			}
		}
		if err := s.Call(feature, args...); err != nil {
			return nil, fmt.Errorf("definition: %s: %s: %w", at.Pointer(), feature, err)
		}
	}

	if n.Each != nil {
		child, err := n.Each.build(at.Append("[]"))
		if err != nil {
			return nil, err
		}
		if err := s.Call("each", child, n.IgnoreEachErrors); err != nil {
			return nil, fmt.Errorf("definition: %s: each: %w", at.Pointer(), err)
		}
	}

	if n.Properties != nil {
		policy, err := unknownPolicy(n.Unknown)
		if err != nil {
			return nil, fmt.Errorf("definition: %s: %w", at.Pointer(), err)
		}
		props := make(map[string]*vs.Schema, len(n.Properties))
		for key, child := range n.Properties {
			cs, err := child.build(at.Append(key))
			if err != nil {
				return nil, err
			}
			props[key] = cs
		}
		if err := s.Call("schema", props, policy); err != nil {
			return nil, fmt.Errorf("definition: %s: properties: %w", at.Pointer(), err)
		}
	} else if n.Unknown != "" {
		return nil, fmt.Errorf("definition: %s: %w: unknown without properties", at.Pointer(), ErrInvalidNode)
	}
	return s, nil
}

// featureCall decodes one with item: "name", {name: arg} or {name: [args...]}. A null
// argument is passed as nil.
func featureCall(item any) (string, []any, error) {
	switch t := item.(type) {
	case string:
		return t, nil, nil
	case map[string]any:
		if len(t) != 1 {
			return "", nil, fmt.Errorf("%w: expected a single feature, got %d keys", ErrInvalidNode, len(t))
		}
		for name, arg := range t {
			switch a := arg.(type) {
			case []any:
				return name, a, nil
			default:
				return name, []any{a}, nil
			}
		}
	}
	return "", nil, fmt.Errorf("%w: unexpected %T", ErrInvalidNode, item)
}

// converterArgs resolves a converter name through the codec registry.
func converterArgs(args []any) ([]any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected one converter name", ErrInvalidNode)
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected converter name, got %T", ErrInvalidNode, args[0])
	}
	fn, ok := codec.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown converter %q", ErrInvalidNode, name)
	}
	return []any{fn}, nil
}

func unknownPolicy(s string) (vs.UnknownPolicy, error) {
	switch s {
	case "", "strip":
		return vs.UnknownStrip, nil
	case "passthrough":
		return vs.UnknownPassthrough, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidNode, s)
	}
}
