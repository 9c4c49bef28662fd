package zonecfg

import (
	"errors"
	"sync"

	"ergzones/internal/domain"
)

// Registry holds named, pre-loaded configurations so that calculation
// requests reference configurations by name instead of by file path.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]*Config
	names   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]*Config)}
}

// Register stores a configuration under the given name, replacing any
// previous configuration with that name.
func (r *Registry) Register(name string, cfg *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[name]; !exists {
		r.names = append(r.names, name)
	}
	r.configs[name] = cfg
}

// Get returns the configuration registered under name. An unknown name is
// reported as an unreadable-configuration error so callers can surface it as
// configuration-not-found.
func (r *Registry) Get(name string) (*Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[name]
	if !ok {
		return nil, &domain.ConfigError{
			Path: name,
			Kind: domain.ConfigUnreadable,
			Err:  errors.New("no configuration registered under this name"),
		}
	}
	return cfg, nil
}

// Names returns the registered configuration names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
