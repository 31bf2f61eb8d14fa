package formstatex

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound reports a registry lookup for an unknown form name.
var ErrNotFound = errors.New("form not found")

// Registry provides thread-safe storage for named forms. The FormState core
// is lock-free; hosts that share forms across goroutines route mutation
// through Update, which holds the write lock for the whole transition.
type Registry struct {
	mu    sync.RWMutex
	forms map[string]*Form
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		forms: make(map[string]*Form),
	}
}

// Get retrieves a form by name. Returns nil if the name is not registered.
func (r *Registry) Get(name string) *Form {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.forms[name]
}

// Put stores a form under name, replacing any previous entry.
func (r *Registry) Put(name string, f *Form) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[name] = f
}

// Delete removes a name from the registry.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.forms, name)
}

// Update runs fn against the named form under the write lock, serializing
// Set/Next/Submit transitions across goroutines. When fn returns a non-nil
// form, it replaces the stored entry; this lets Next/Submit results take the
// slot of the instance they were derived from.
func (r *Registry) Update(name string, fn func(*Form) (*Form, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.forms[name]
	if !ok {
		return ErrNotFound
	}
	next, err := fn(f)
	if err != nil {
		return err
	}
	if next != nil {
		r.forms[name] = next
	}
	return nil
}

// Forms returns a snapshot copy of the registered-forms map. The returned
// map is a defensive copy and modifications will not affect the registry.
func (r *Registry) Forms() map[string]*Form {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*Form, len(r.forms))
	for name, f := range r.forms {
		snapshot[name] = f
	}
	return snapshot
}

// Names returns all registered form names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
