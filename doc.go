// Package oasderive derives OpenAPI 2.0 (Swagger) document fragments from
// host-framework route and model metadata.
//
// Where most OpenAPI tooling starts from a spec document, oasderive starts from
// the other end: a web framework that knows, per endpoint, which method arguments
// bind to the path, query, headers, body, or form data, and which model types
// those arguments carry. oasderive turns that metadata into the parameter lists
// and named schema definitions of an OpenAPI 2.0 document.
//
// # Overview
//
// The library consists of the following packages:
//
//   - metadata: the provider contract (how endpoint and model metadata is read)
//     plus concrete providers: an in-memory registry, a declarative YAML/JSON
//     manifest loader, and a Go struct reflection adapter (metadata/structmeta)
//   - spec: the OpenAPI 2.0 parameter and schema shapes the derivation emits
//   - schemagen: recursive schema definition derivation for composite types
//   - paramgen: reflected parameter extraction, override merging, body/form
//     resolution, and final parameter normalization
//   - docgen: fragment assembly, JSON/YAML serialization, and lint checks
//   - generator: Go model code generation from derived definitions
//   - oaserrors: structured error types shared across packages
//
// # Quick Start
//
// Describe an endpoint and derive its parameters:
//
//	reg := metadata.NewRegistry()
//	reg.Model("User").
//	    Prop("id", metadata.Primitive("Number")).
//	    Prop("name", metadata.Primitive("String"))
//	reg.Route("UserController", "create").
//	    Bind(0, metadata.BindBody, "", metadata.Composite(reg.Handle("User")))
//
//	defs := schemagen.NewRegistry()
//	result := paramgen.Derive(defs, paramgen.Input{
//	    Provider: reg,
//	    Target:   "UserController",
//	    Method:   "create",
//	})
//	// result.Parameters -> [{name: User, in: body, schema: {$ref: #/definitions/User}}]
//	// defs.Definitions() -> [{User: {type: object, properties: ...}}]
//
// Or derive straight from Go structs:
//
//	type User struct {
//	    ID   int    `json:"id"`
//	    Name string `json:"name"`
//	}
//	handle := structmeta.HandleOf(User{})
//
// # Command Line
//
// The oasderive CLI derives fragments from a metadata manifest file:
//
//	oasderive derive -manifest api.yaml -format json
//	oasderive lint -manifest api.yaml
//	oasderive generate -manifest api.yaml -output models.go
//	oasderive mcp
package oasderive
