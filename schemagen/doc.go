// Package schemagen derives named OpenAPI 2.0 schema definitions from
// composite type metadata.
//
// The definition builder walks a composite handle's exposed properties,
// recursing into nested composite types and registering each derived
// definition in a Registry as it is encountered. Supporting utilities map
// native type names onto the OAS 2.0 primitive vocabulary, resolve enum
// sources (filtering reverse-lookup aliases out of bidirectional mappings),
// and list the properties a type has opted into schema exposure.
//
// The walk is cycle-safe: a type already being expanded is referenced by
// $ref instead of re-expanded, so self-referential type graphs terminate.
package schemagen
