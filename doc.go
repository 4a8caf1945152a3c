package skemadef

// Package skemadef provides:
//
// - Composable schema components that pair a JSON Schema document generator
//   with a parser/validator for the same shape (Component[T])
// - A stable error model via Issues (JSON Pointer, code, message)
// - A mutex-guarded Configuration store consulted at call time by
//   conditional combinators (null acceptance, key naming)
// - Deduplication of generated schema documents into shared $defs
//   references (jsonschema.Definition)
//
// Design policy:
// - Keep only public APIs in the root package; put combinators under dsl/
//   and the document model under jsonschema/.
// - Schema generation is total: SchemaValue() never fails for a well-formed
//   component tree. Parse failures are always data, never panics.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	addr := dsl.Object().
//		Field("street", dsl.ComponentOf[string](dsl.String())).Required().
//		Field("city", dsl.ComponentOf[string](dsl.String())).Required().
//		MustBuild()
//
//	v, err := skemadef.ParseJSON(addr, data)
//	doc := jsonschema.Definition(addr.SchemaValue())
