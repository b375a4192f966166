// Package dsl defines the built-in schema kinds and a typed fluent API over them.
//
// Every kind fixes the order of its appliers; builders only configure the per-instance slots.
//
//	user := dsl.Object().Properties(map[string]dsl.Schemable{
//	    "id":    dsl.Number().Integer().MinValue(1),
//	    "email": dsl.Email().Trim(),
//	    "tags":  dsl.Array().SeparatedBy(",").Each(dsl.String().Trim(), true),
//	})
//	out, err := user.Adjust(input)
//
// The kinds are also registered by name (boolean, number, string, numericString, email, ipv4,
// ipv6, array, object) so declarative definitions can look them up with
// valueschema.LookupKind.
package dsl
