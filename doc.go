// Package valueschema provides:
//
// - An ordered applier pipeline per Schema (inspect -> transform -> validate) with short-circuit
// - Per-instance configuration slots, so two schemas of the same Kind never share state
// - Recursive composites (Each for array elements, Properties for object keys) with key paths
// - A stable error model via AdjustmentError (cause, original value, KeyStack)
// - Multi-field Adjust over a record with per-field error routing
//
// Design policy:
// - Keep the engine (Kind, Schema, Values, errors, composites) in the root package.
// - Put leaf appliers under appliers/, schema kinds and fluent builders under dsl/,
//   declarative loading under definition/, and the CLI under cmd/valueschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := g.Object().Properties(map[string]g.Schemable{
//		"name":  g.String().Trim().MinLength(1),
//		"email": g.Email(),
//	})
//	v, err := user.Adjust(input)
//
//	var errs valueschema.Errors
//	rec, err := valueschema.Adjust(input, fields, valueschema.Collect(&errs))
package valueschema
