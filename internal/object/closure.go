package object

// Closure is a scope: an unordered mapping from identifier to value
// handle, keys unique. It plays two roles: the top-level program
// scope, and a method's local scope (into which self and the actual
// arguments are bound). Unsynchronized: Mython evaluation is
// single-threaded.
type Closure struct {
	vars map[string]Value
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{vars: make(map[string]Value)}
}

// Get resolves name, reporting ok=false if it is unbound.
func (c *Closure) Get(name string) (Value, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (c *Closure) Set(name string, v Value) {
	c.vars[name] = v
}
