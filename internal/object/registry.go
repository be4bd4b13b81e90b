package object

import (
	"sync"

	"github.com/zephyrtronium/contains"
)

// Registry tracks every instance ever allocated by a monotonic ID, the
// key that Reachable's cycle-safe sweep uses: field assignment can close
// a reference cycle between instances, so a plain count of registered
// instances can't tell a caller how many are still reachable from the
// program's root scope without a cycle-safe graph walk.
type Registry struct {
	mu     sync.Mutex
	nextID uintptr
	live   map[uintptr]*Instance
}

// NewRegistry returns an empty instance registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[uintptr]*Instance)}
}

func (r *Registry) register(inst *Instance) uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.live[id] = inst
	return id
}

// Live returns the number of instances ever allocated through this
// registry (reference counting is not implemented; Go's GC reclaims
// unreachable instances on its own schedule, so this is a high-water
// mark, not a live count).
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Reachable walks from root, following every Instance value stored
// directly in root's bindings and transitively through instance
// fields, and returns the count of distinct instances found. It uses
// contains.Set keyed by instance ID to guard against a field-assignment
// cycle between instances sending the walk into an infinite loop.
func Reachable(root *Closure) int {
	set := contains.Set{}
	count := 0
	var stack []*Instance
	push := func(v Value) {
		if inst, ok := v.AsInstance(); ok {
			if set.Add(inst.ID()) {
				count++
				stack = append(stack, inst)
			}
		}
	}
	for _, v := range root.vars {
		push(v)
	}
	for len(stack) > 0 {
		inst := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range inst.Fields.vars {
			push(v)
		}
	}
	return count
}
