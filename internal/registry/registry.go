// Package registry maps environment IDs to factories so harnesses can build
// environments by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samdwyer/ghostlygrid/internal/config"
	"github.com/samdwyer/ghostlygrid/internal/grid"
	"github.com/samdwyer/ghostlygrid/internal/render"
)

var (
	// ErrUnknownID is returned by Make for an ID nothing registered.
	ErrUnknownID = errors.New("registry: unknown environment id")
	// ErrDuplicateID is returned when an ID is registered twice.
	ErrDuplicateID = errors.New("registry: duplicate environment id")
	// ErrInvalidSpec is returned for a spec without an ID or factory.
	ErrInvalidSpec = errors.New("registry: invalid spec")
)

// Env is the reset/step protocol every registered environment implements.
type Env interface {
	Reset() (grid.Observation, grid.Info, error)
	Step(action grid.Action) (grid.StepResult, error)
	Observation() (grid.Observation, error)
	Render() (*render.Frame, error)
	Close() error
}

// Factory builds an environment from configuration.
type Factory func(cfg config.Env) (Env, error)

// Spec describes a registered environment.
type Spec struct {
	ID      string
	Factory Factory
	// MaxEpisodeSteps is a suggested step cap for drivers. Zero means none.
	MaxEpisodeSteps int
}

// Registry holds environment specs by ID.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]Spec
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds a spec. IDs must be unique.
func (r *Registry) Register(spec Spec) error {
	if spec.ID == "" || spec.Factory == nil {
		return fmt.Errorf("%w: id and factory are required", ErrInvalidSpec)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.specs[spec.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, spec.ID)
	}
	r.specs[spec.ID] = spec
	return nil
}

// Lookup returns the spec registered under id.
func (r *Registry) Lookup(id string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[id]
	return spec, ok
}

// Make builds the environment registered under id.
func (r *Registry) Make(id string, cfg config.Env) (Env, error) {
	spec, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownID, id)
	}
	env, err := spec.Factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("make %s: %w", id, err)
	}
	return env, nil
}

// IDs returns every registered ID in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var defaultRegistry = New()

// Register adds a spec to the default registry.
func Register(spec Spec) error {
	return defaultRegistry.Register(spec)
}

// MustRegister adds a spec to the default registry, panicking on error.
// Use this from package init functions.
func MustRegister(spec Spec) {
	if err := Register(spec); err != nil {
		panic(err)
	}
}

// Lookup returns a spec from the default registry.
func Lookup(id string) (Spec, bool) {
	return defaultRegistry.Lookup(id)
}

// Make builds an environment from the default registry.
func Make(id string, cfg config.Env) (Env, error) {
	return defaultRegistry.Make(id, cfg)
}

// IDs lists the default registry.
func IDs() []string {
	return defaultRegistry.IDs()
}
