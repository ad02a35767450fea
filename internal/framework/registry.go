package framework

import (
	"fmt"
	"sync"
)

// Registry holds the validated framework records for both domains.
//
// It is populated once at process start via Load and is read-only
// afterwards in normal operation; Register exists as an append-only
// extension point and is validated by the same contract as builtins.
// Reads are safe for concurrent callers.
type Registry struct {
	mu      sync.RWMutex
	records map[Domain]map[string]Record
	order   map[Domain][]string // insertion order, drives tie-breaks for unlisted ids
	loaded  map[Domain]bool
}

// NewRegistry creates an empty registry. Call Load for each domain
// before handing it to the suggester or engines.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[Domain]map[string]Record),
		order:   make(map[Domain][]string),
		loaded:  make(map[Domain]bool),
	}
}

// Load populates the domain from the compiled-in builtin records.
// It fails fast with *RegistryLoadError on the first invalid record —
// nothing is silently skipped. Loading an already-loaded domain is a no-op.
func (r *Registry) Load(d Domain) error {
	if err := ValidateDomain(d); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded[d] {
		return nil
	}

	for _, rec := range builtins(d) {
		if err := r.register(d, rec); err != nil {
			return err
		}
	}
	r.loaded[d] = true
	return nil
}

// Register adds a record beyond the builtins. The record passes the same
// validation contract; duplicate ids are rejected. The registry is
// append-only — existing records are never replaced or removed.
func (r *Registry) Register(d Domain, rec Record) error {
	if err := Validate(d, rec); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(d, rec)
}

// register inserts without re-validating builtins' domain. Caller holds mu.
func (r *Registry) register(d Domain, rec Record) error {
	if err := Validate(d, rec); err != nil {
		return err
	}
	if r.records[d] == nil {
		r.records[d] = make(map[string]Record)
	}
	if _, exists := r.records[d][rec.ID]; exists {
		return &RegistryLoadError{Domain: d, ID: rec.ID, Reason: "duplicate id"}
	}
	r.records[d][rec.ID] = rec
	r.order[d] = append(r.order[d], rec.ID)
	return nil
}

// Get returns the record for (domain, id), or *UnknownFrameworkError.
func (r *Registry) Get(d Domain, id string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[d][id]
	if !ok {
		return Record{}, &UnknownFrameworkError{Domain: d, ID: id}
	}
	return rec, nil
}

// Exists reports whether (domain, id) is registered.
func (r *Registry) Exists(d Domain, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[d][id]
	return ok
}

// List returns the registered ids for a domain in registration order.
// The returned slice is a copy.
func (r *Registry) List(d Domain) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order[d]))
	copy(out, r.order[d])
	return out
}

// ordinal returns the registration position of id within the domain,
// or a position past every registered id when unknown. Used by the
// suggester as the last tie-break for ids absent from the priority table.
func (r *Registry) ordinal(d Domain, id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, known := range r.order[d] {
		if known == id {
			return i
		}
	}
	return len(r.order[d])
}

// MustLoad loads both domains and panics on failure. Intended for tests
// and the composition root, where a load error is a startup defect.
func MustLoad() *Registry {
	r := NewRegistry()
	for _, d := range []Domain{Planning, Auditing} {
		if err := r.Load(d); err != nil {
			panic(fmt.Sprintf("framework: %v", err))
		}
	}
	return r
}
