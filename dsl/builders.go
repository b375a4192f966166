package dsl

import (
	"regexp"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/appliers"
)

// Integer modes for NumberSchema.Integer.
const (
	IntegerTrunc = appliers.IntegerTrunc
	IntegerFloor = appliers.IntegerFloor
	IntegerCeil  = appliers.IntegerCeil
	IntegerRound = appliers.IntegerRound
)

// Checksum algorithms for NumericStringSchema.Checksum.
const (
	Luhn              = appliers.ChecksumLuhn
	CreditCard        = appliers.ChecksumCreditCard
	Modulus10Weight31 = appliers.ChecksumModulus10Weight31
	ISBN13            = appliers.ChecksumISBN13
	EAN               = appliers.ChecksumEAN
	JAN               = appliers.ChecksumJAN
)

// Schemable is anything that wraps a *valueschema.Schema. Every builder in this package and
// *valueschema.Schema itself satisfy it.
type Schemable interface {
	Base() *vs.Schema
}

// Fields unwraps a map of builders for valueschema.Adjust.
func Fields(m map[string]Schemable) map[string]*vs.Schema {
	out := make(map[string]*vs.Schema, len(m))
	for k, s := range m {
		out[k] = s.Base()
	}
	return out
}

func optional[T any](v []T) []any {
	if len(v) == 0 {
		return nil
	}
	return []any{v[0]}
}

// ---- boolean ----

// BooleanSchema builds a boolean kind schema.
type BooleanSchema struct{ *vs.Schema }

// Boolean returns a new boolean schema.
func Boolean() *BooleanSchema { return &BooleanSchema{BooleanKind.New()} }

func (s *BooleanSchema) Default(v any) *BooleanSchema { s.With("default", v); return s }

// AcceptNull replaces null with the first replacement, or keeps null when none is given.
func (s *BooleanSchema) AcceptNull(replacement ...any) *BooleanSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *BooleanSchema) AcceptEmptyString(replacement ...any) *BooleanSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// Strict accepts only bool values.
func (s *BooleanSchema) Strict() *BooleanSchema { s.With("strict"); return s }

// AcceptAllNumbers maps every non-zero number to true instead of accepting only 0 and 1.
func (s *BooleanSchema) AcceptAllNumbers() *BooleanSchema { s.With("acceptAllNumbers"); return s }

func (s *BooleanSchema) Convert(fn appliers.ConvertFunc) *BooleanSchema {
	s.With("convert", fn)
	return s
}

// ---- number ----

// NumberSchema builds a number kind schema. Adjusted values are float64.
type NumberSchema struct{ *vs.Schema }

// Number returns a new number schema.
func Number() *NumberSchema { return &NumberSchema{NumberKind.New()} }

func (s *NumberSchema) Default(v any) *NumberSchema { s.With("default", v); return s }

func (s *NumberSchema) AcceptNull(replacement ...any) *NumberSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *NumberSchema) AcceptEmptyString(replacement ...any) *NumberSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// Strict rejects strings and booleans.
func (s *NumberSchema) Strict() *NumberSchema { s.With("strict"); return s }

// AcceptSpecialFormats parses exponent, hex, octal and binary notations in strings.
func (s *NumberSchema) AcceptSpecialFormats() *NumberSchema {
	s.With("acceptSpecialFormats")
	return s
}

// Integer requires an integral value. Without a mode fractional values are rejected;
// otherwise they are rounded as mode says.
func (s *NumberSchema) Integer(mode ...appliers.IntegerMode) *NumberSchema {
	s.With("integer", optional(mode)...)
	return s
}

func (s *NumberSchema) Only(values ...any) *NumberSchema { s.With("only", values...); return s }

// MinValue fails below n, or clamps to n when adjust is true.
func (s *NumberSchema) MinValue(n float64, adjust ...bool) *NumberSchema {
	s.With("minValue", append([]any{n}, optional(adjust)...)...)
	return s
}

// MaxValue fails above n, or clamps to n when adjust is true.
func (s *NumberSchema) MaxValue(n float64, adjust ...bool) *NumberSchema {
	s.With("maxValue", append([]any{n}, optional(adjust)...)...)
	return s
}

func (s *NumberSchema) Convert(fn appliers.ConvertFunc) *NumberSchema {
	s.With("convert", fn)
	return s
}

// ---- string ----

// StringSchema builds a string kind schema.
type StringSchema struct{ *vs.Schema }

// String returns a new string schema.
func String() *StringSchema { return &StringSchema{StringKind.New()} }

func (s *StringSchema) Default(v any) *StringSchema { s.With("default", v); return s }

func (s *StringSchema) AcceptNull(replacement ...any) *StringSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *StringSchema) AcceptEmptyString(replacement ...any) *StringSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// Strict rejects non-string input instead of stringifying numbers and booleans.
func (s *StringSchema) Strict() *StringSchema { s.With("strict"); return s }

func (s *StringSchema) Trim() *StringSchema { s.With("trim"); return s }

func (s *StringSchema) Only(values ...any) *StringSchema { s.With("only", values...); return s }

func (s *StringSchema) MinLength(n int) *StringSchema { s.With("minLength", n); return s }

// MaxLength fails when longer than n runes, or truncates when adjust is true.
func (s *StringSchema) MaxLength(n int, adjust ...bool) *StringSchema {
	s.With("maxLength", append([]any{n}, optional(adjust)...)...)
	return s
}

func (s *StringSchema) Pattern(re *regexp.Regexp) *StringSchema { s.With("pattern", re); return s }

func (s *StringSchema) Convert(fn appliers.ConvertFunc) *StringSchema {
	s.With("convert", fn)
	return s
}

// ---- formats ----

// FormatSchema builds an email, ipv4 or ipv6 kind schema. The pattern is preset; the
// format kinds have no only or minLength step.
type FormatSchema struct{ *vs.Schema }

// Email returns a new schema preset with an e-mail address pattern.
func Email() *FormatSchema { return &FormatSchema{EmailKind.New()} }

// IPv4 returns a new schema preset with a dotted-quad pattern.
func IPv4() *FormatSchema { return &FormatSchema{IPv4Kind.New()} }

// IPv6 returns a new schema preset with an IPv6 address pattern.
func IPv6() *FormatSchema { return &FormatSchema{IPv6Kind.New()} }

func (s *FormatSchema) Default(v any) *FormatSchema { s.With("default", v); return s }

func (s *FormatSchema) AcceptNull(replacement ...any) *FormatSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *FormatSchema) AcceptEmptyString(replacement ...any) *FormatSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

func (s *FormatSchema) Strict() *FormatSchema { s.With("strict"); return s }

func (s *FormatSchema) Trim() *FormatSchema { s.With("trim"); return s }

func (s *FormatSchema) MaxLength(n int, adjust ...bool) *FormatSchema {
	s.With("maxLength", append([]any{n}, optional(adjust)...)...)
	return s
}

// Pattern replaces the preset pattern.
func (s *FormatSchema) Pattern(re *regexp.Regexp) *FormatSchema { s.With("pattern", re); return s }

func (s *FormatSchema) Convert(fn appliers.ConvertFunc) *FormatSchema {
	s.With("convert", fn)
	return s
}

// ---- numeric string ----

// NumericStringSchema builds a numericString kind schema: a string made of digits only.
type NumericStringSchema struct{ *vs.Schema }

// NumericString returns a new numericString schema.
func NumericString() *NumericStringSchema {
	return &NumericStringSchema{NumericStringKind.New()}
}

func (s *NumericStringSchema) Default(v any) *NumericStringSchema { s.With("default", v); return s }

func (s *NumericStringSchema) AcceptNull(replacement ...any) *NumericStringSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *NumericStringSchema) AcceptEmptyString(replacement ...any) *NumericStringSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// JoinArray concatenates array input into one string before any other check.
func (s *NumericStringSchema) JoinArray() *NumericStringSchema { s.With("joinArray"); return s }

// SeparatedBy removes sep (a literal string or *regexp.Regexp) from the input.
func (s *NumericStringSchema) SeparatedBy(sep any) *NumericStringSchema {
	s.With("separatedBy", sep)
	return s
}

func (s *NumericStringSchema) MinLength(n int) *NumericStringSchema {
	s.With("minLength", n)
	return s
}

func (s *NumericStringSchema) MaxLength(n int, adjust ...bool) *NumericStringSchema {
	s.With("maxLength", append([]any{n}, optional(adjust)...)...)
	return s
}

// Checksum validates the digits with the named algorithm (Luhn, ISBN13, ...).
func (s *NumericStringSchema) Checksum(algorithm string) *NumericStringSchema {
	s.With("checksum", algorithm)
	return s
}

func (s *NumericStringSchema) Convert(fn appliers.ConvertFunc) *NumericStringSchema {
	s.With("convert", fn)
	return s
}

// ---- array ----

// ArraySchema builds an array kind schema. Adjusted values are []any.
type ArraySchema struct{ *vs.Schema }

// Array returns a new array schema.
func Array() *ArraySchema { return &ArraySchema{ArrayKind.New()} }

func (s *ArraySchema) Default(v any) *ArraySchema { s.With("default", v); return s }

func (s *ArraySchema) AcceptNull(replacement ...any) *ArraySchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *ArraySchema) AcceptEmptyString(replacement ...any) *ArraySchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// ToArray wraps a non-array value into a one-element array.
func (s *ArraySchema) ToArray() *ArraySchema { s.With("toArray"); return s }

// SeparatedBy splits string input on sep (a literal string or *regexp.Regexp).
func (s *ArraySchema) SeparatedBy(sep any) *ArraySchema { s.With("separatedBy", sep); return s }

// Each adjusts every element with elem. With ignoreErrors set, failing elements are dropped.
func (s *ArraySchema) Each(elem Schemable, ignoreErrors ...bool) *ArraySchema {
	s.With("each", append([]any{elem.Base()}, optional(ignoreErrors)...)...)
	return s
}

func (s *ArraySchema) MinLength(n int) *ArraySchema { s.With("minLength", n); return s }

// MaxLength fails when longer than n, or drops the tail when adjust is true.
func (s *ArraySchema) MaxLength(n int, adjust ...bool) *ArraySchema {
	s.With("maxLength", append([]any{n}, optional(adjust)...)...)
	return s
}

func (s *ArraySchema) Convert(fn appliers.ConvertFunc) *ArraySchema {
	s.With("convert", fn)
	return s
}

// ---- object ----

// ObjectSchema builds an object kind schema. Adjusted values are map[string]any.
type ObjectSchema struct{ *vs.Schema }

// Object returns a new object schema.
func Object() *ObjectSchema { return &ObjectSchema{ObjectKind.New()} }

func (s *ObjectSchema) Default(v any) *ObjectSchema { s.With("default", v); return s }

func (s *ObjectSchema) AcceptNull(replacement ...any) *ObjectSchema {
	s.With("acceptNull", optional(replacement)...)
	return s
}

func (s *ObjectSchema) AcceptEmptyString(replacement ...any) *ObjectSchema {
	s.With("acceptEmptyString", optional(replacement)...)
	return s
}

// Properties adjusts each declared key with its schema. Undeclared keys are stripped.
func (s *ObjectSchema) Properties(props map[string]Schemable) *ObjectSchema {
	s.With("schema", Fields(props))
	return s
}

// Passthrough copies undeclared keys to the output unchanged.
func (s *ObjectSchema) Passthrough() *ObjectSchema {
	vs.Configure(s.Schema, vs.Properties, func(c *vs.PropertiesConfig) {
		c.Unknown = vs.UnknownPassthrough
	})
	return s
}

func (s *ObjectSchema) Convert(fn appliers.ConvertFunc) *ObjectSchema {
	s.With("convert", fn)
	return s
}
