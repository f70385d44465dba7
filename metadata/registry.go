package metadata

// Registry is an in-memory metadata provider with fluent registration.
// Frameworks (or tests) register models and routes at startup, then hand the
// Registry to the derivation core as a Provider.
//
// Registration is not safe for concurrent use; reads after registration are.
type Registry struct {
	models     map[string]*Model
	routes     map[string]*Route
	routeOrder []RouteRef
}

// RouteRef identifies one registered endpoint method.
type RouteRef struct {
	Target string
	Method string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]*Model),
		routes: make(map[string]*Route),
	}
}

// Routes lists every registered endpoint in registration order.
func (r *Registry) Routes() []RouteRef {
	return r.routeOrder
}

// Model returns the model registration for name, creating it if needed.
func (r *Registry) Model(name string) *Model {
	if m, ok := r.models[name]; ok {
		return m
	}
	m := &Model{name: name, props: make(map[string]PropertyMetadata)}
	r.models[name] = m
	return m
}

// Handle returns the composite handle for a registered model, or nil if the
// name is unknown.
func (r *Registry) Handle(name string) CompositeHandle {
	if m, ok := r.models[name]; ok {
		return m
	}
	return nil
}

// ResolveType turns a manifest-style type name into a TypeRef: a registered
// model name becomes a composite handle, an empty name or the untyped
// placeholders ("any", "Object") become the untyped marker, anything else is
// treated as a primitive name.
func (r *Registry) ResolveType(name string) TypeRef {
	switch name {
	case "", "any", "Object", "object":
		return Untyped()
	}
	if m, ok := r.models[name]; ok {
		return Composite(m)
	}
	return Primitive(name)
}

// Route returns the route registration for (target, method), creating it if
// needed.
func (r *Registry) Route(target, method string) *Route {
	key := target + "\x00" + method
	if rt, ok := r.routes[key]; ok {
		return rt
	}
	rt := &Route{}
	r.routes[key] = rt
	r.routeOrder = append(r.routeOrder, RouteRef{Target: target, Method: method})
	return rt
}

func (r *Registry) route(target, method string) *Route {
	return r.routes[target+"\x00"+method]
}

// ParamTypes implements Provider.
func (r *Registry) ParamTypes(target, method string) []TypeRef {
	rt := r.route(target, method)
	if rt == nil {
		return nil
	}
	return rt.types
}

// RouteArgs implements Provider.
func (r *Registry) RouteArgs(target, method string) []ArgBinding {
	rt := r.route(target, method)
	if rt == nil {
		return nil
	}
	return rt.bindings
}

// ExplicitParams implements Provider.
func (r *Registry) ExplicitParams(target, method string) []Param {
	rt := r.route(target, method)
	if rt == nil {
		return nil
	}
	return rt.explicit
}

// Model is a registered composite type. It implements CompositeHandle.
type Model struct {
	name  string
	order []string
	props map[string]PropertyMetadata
	calls []string
}

// Prop registers a data property with just a type, the common case.
func (m *Model) Prop(name string, t TypeRef) *Model {
	return m.PropWith(name, PropertyMetadata{Type: t})
}

// PropWith registers a data property with full metadata. Registering the same
// name twice replaces the metadata but keeps the original position.
func (m *Model) PropWith(name string, meta PropertyMetadata) *Model {
	if _, ok := m.props[name]; !ok {
		m.order = append(m.order, name)
	}
	m.props[name] = meta
	return m
}

// Callable registers a method member. Callables are listed by Members but
// never exposed as schema properties.
func (m *Model) Callable(name string) *Model {
	m.calls = append(m.calls, name)
	return m
}

// Name implements CompositeHandle.
func (m *Model) Name() string {
	return m.name
}

// Members implements CompositeHandle. Data properties appear with the
// PropertyMarker prefix in registration order, followed by callables.
func (m *Model) Members() []Member {
	members := make([]Member, 0, len(m.order)+len(m.calls))
	for _, name := range m.order {
		members = append(members, Member{Name: PropertyMarker + name})
	}
	for _, name := range m.calls {
		members = append(members, Member{Name: name, Callable: true})
	}
	return members
}

// Property implements CompositeHandle.
func (m *Model) Property(name string) (PropertyMetadata, bool) {
	meta, ok := m.props[name]
	return meta, ok
}

// Route is a registered endpoint method.
type Route struct {
	types    []TypeRef
	bindings []ArgBinding
	explicit []Param
}

// Bind registers one positional argument binding together with its declared
// type. Argument indexes must match the order Bind is called in for the
// positional type list to line up; use BindAt when registering out of order.
func (rt *Route) Bind(index int, code BindCode, name string, t TypeRef) *Route {
	return rt.BindAt(index, code, name, t)
}

// BindAt registers a binding at an explicit argument index, growing the
// positional type list as needed.
func (rt *Route) BindAt(index int, code BindCode, name string, t TypeRef) *Route {
	for len(rt.types) <= index {
		rt.types = append(rt.types, Untyped())
	}
	rt.types[index] = t
	rt.bindings = append(rt.bindings, ArgBinding{Index: index, Code: code, Name: name})
	return rt
}

// Explicit registers an explicitly authored parameter override.
func (rt *Route) Explicit(p Param) *Route {
	rt.explicit = append(rt.explicit, p)
	return rt
}
