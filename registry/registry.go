package registry

import (
	"fmt"
	"sync"

	"github.com/ncecere/davinci-go/provider"
)

// Registry is a simple registry for completion models.
//
// It maps string model identifiers (for example, "davinci" or
// "openai:text-davinci-003") to concrete provider implementations.
// This allows application code and higher-level helpers to look up
// models by name without depending directly on specific provider
// packages.
type Registry interface {
	// CompletionModel returns the registered completion model for the given name.
	// If no such model exists, a *NoSuchModelError is returned.
	CompletionModel(name string) (provider.CompletionModel, error)

	// RegisterCompletionModel registers or replaces a completion model under the given name.
	// Passing a nil model removes any existing registration for that name.
	RegisterCompletionModel(name string, model provider.CompletionModel)
}

// NoSuchModelError indicates that a requested model name was not
// found in the registry.
type NoSuchModelError struct {
	// Name is the model name that was requested.
	Name string
}

func (e *NoSuchModelError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("registry: no such completion model %q", e.Name)
}

// InMemoryRegistry is a concurrency-safe in-memory implementation of Registry.
// It is suitable for typical application startup wiring where models are
// registered once and then used throughout the lifetime of the process.
type InMemoryRegistry struct {
	mu sync.RWMutex

	completionModels map[string]provider.CompletionModel
}

// Ensure InMemoryRegistry implements Registry.
var _ Registry = (*InMemoryRegistry)(nil)

// NewInMemoryRegistry creates a new empty in-memory registry.
func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{
		completionModels: make(map[string]provider.CompletionModel),
	}
}

// CompletionModel implements Registry.CompletionModel.
func (r *InMemoryRegistry) CompletionModel(name string) (provider.CompletionModel, error) {
	r.mu.RLock()
	model, ok := r.completionModels[name]
	r.mu.RUnlock()
	if !ok || model == nil {
		return nil, &NoSuchModelError{Name: name}
	}
	return model, nil
}

// RegisterCompletionModel implements Registry.RegisterCompletionModel.
func (r *InMemoryRegistry) RegisterCompletionModel(name string, model provider.CompletionModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if model == nil {
		delete(r.completionModels, name)
		return
	}
	r.completionModels[name] = model
}
