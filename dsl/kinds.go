package dsl

import (
	"regexp"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/appliers"
)

// Built-in kinds. The step order of each is part of its contract.
var (
	BooleanKind = vs.DefineKind("boolean",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.IfEmptyString,
		appliers.BooleanType,
		appliers.Converter,
	)

	NumberKind = vs.DefineKind("number",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.IfEmptyString,
		appliers.NumberType,
		appliers.Only,
		appliers.MinValue,
		appliers.MaxValue,
		appliers.Converter,
	)

	StringKind = vs.DefineKind("string",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.StringType,
		appliers.Trim,
		appliers.Only,
		appliers.IfEmptyString,
		appliers.StringMinLength,
		appliers.StringMaxLength,
		appliers.Pattern,
		appliers.Converter,
	)

	NumericStringKind = vs.DefineKind("numericString",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.JoinArray,
		appliers.SeparatedBy,
		appliers.IfEmptyString,
		appliers.NumericStringType,
		appliers.StringMinLength,
		appliers.StringMaxLength,
		appliers.Checksum,
		appliers.Converter,
	)

	EmailKind = formatKind("email", appliers.PatternEmail)
	IPv4Kind  = formatKind("ipv4", appliers.PatternIPv4)
	IPv6Kind  = formatKind("ipv6", appliers.PatternIPv6)

	ArrayKind = vs.DefineKind("array",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.IfEmptyString,
		appliers.ArrayType,
		vs.Each,
		appliers.ArrayMinLength,
		appliers.ArrayMaxLength,
		appliers.Converter,
	)

	ObjectKind = vs.DefineKind("object",
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.IfEmptyString,
		vs.Properties,
		appliers.ObjectType,
		appliers.Converter,
	)
)

// formatKind is a string kind whose pattern is preset on every new instance.
func formatKind(name string, pattern *regexp.Regexp) *vs.Kind {
	return vs.DefineKind(name,
		appliers.IfUndefined,
		appliers.IfNull,
		appliers.StringType,
		appliers.Trim,
		appliers.IfEmptyString,
		appliers.StringMaxLength,
		appliers.Pattern,
		appliers.Converter,
	).Preset(func(s *vs.Schema) {
		s.With("pattern", pattern)
	})
}

func init() {
	for _, k := range []*vs.Kind{
		BooleanKind, NumberKind, StringKind, NumericStringKind,
		EmailKind, IPv4Kind, IPv6Kind, ArrayKind, ObjectKind,
	} {
		if err := vs.RegisterKind(k); err != nil {
			panic(err)
		}
	}
}
