package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry holds one value per static type. Generic stores are registered
// under their instantiated type, so string, UUID and ObjectID keyed stores
// never collide.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]any)}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Provide registers v as the value of T, replacing any previous registration.
func Provide[T any](r *Registry, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[typeKey[T]()] = v
}

// Resolve looks up the value registered for T.
func Resolve[T any](r *Registry) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[typeKey[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResolve is Resolve for wiring code where a missing registration is a programming error.
func MustResolve[T any](r *Registry) T {
	v, ok := Resolve[T](r)
	if !ok {
		panic(fmt.Sprintf("container: nothing registered for %s", typeKey[T]()))
	}
	return v
}

// Len reports the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
