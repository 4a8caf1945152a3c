// Package dsl provides the constructors and combinators of the schema
// component algebra: primitive leaves, object and array builders, choice
// combinators, transforms, annotations, and the conditional null-acceptance
// wrapper.
//
// Every constructor returns a skemadef.Component whose SchemaValue and Parse
// sides are built together and cannot diverge for a fixed configuration
// snapshot.
package dsl
