// Package spec defines the OpenAPI 2.0 (Swagger) shapes that oasderive emits:
// parameter objects, schema objects, and #/definitions/ references.
//
// The types here model only the subset of OAS 2.0 the derivation core produces.
// Arbitrary extra keys carried through from property metadata are preserved in
// the Extra map and flattened into the marshaled object, mirroring how
// specification extensions behave.
package spec
