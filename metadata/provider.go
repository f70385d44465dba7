package metadata

import "github.com/erraggy/oasderive/spec"

// LocationUnbound is the sentinel location for argument bindings whose code
// does not map to a documentable parameter location. Unbound parameters are
// dropped during reflected extraction.
const LocationUnbound = "unbound"

// BindCode is the numeric argument-binding location code a host framework
// attaches to a positional method argument.
type BindCode int

// Argument binding codes. Only body, query, param, and headers bindings are
// documentable; every other code resolves to LocationUnbound.
const (
	BindRequest  BindCode = 0
	BindResponse BindCode = 1
	BindNext     BindCode = 2
	BindBody     BindCode = 3
	BindQuery    BindCode = 4
	BindParam    BindCode = 5
	BindHeaders  BindCode = 6
)

// Location maps the binding code to its parameter location.
func (c BindCode) Location() string {
	switch c {
	case BindBody:
		return spec.ParamInBody
	case BindParam:
		return spec.ParamInPath
	case BindQuery:
		return spec.ParamInQuery
	case BindHeaders:
		return spec.ParamInHeader
	default:
		return LocationUnbound
	}
}

// ArgBinding records how one positional method argument binds to the request:
// its argument index, its binding code, and an optional explicit name (for
// bindings like a single named body field or a specific path variable).
type ArgBinding struct {
	Index int
	Code  BindCode
	Name  string
}

// Provider is the capability contract through which the derivation core reads
// host-framework metadata. Every method tolerates absence: a nil slice means
// "no metadata", never a fault.
type Provider interface {
	// ParamTypes returns the ordered parameter types of a method.
	ParamTypes(target, method string) []TypeRef

	// RouteArgs returns the argument bindings of a method.
	RouteArgs(target, method string) []ArgBinding

	// ExplicitParams returns the explicitly authored parameter overrides of
	// a method, or nil when none were declared.
	ExplicitParams(target, method string) []Param
}
