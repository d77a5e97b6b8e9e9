package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownEvaluation = errors.New("unknown evaluation function")

// Registry maps evaluation function names to functions so agents can be configured by name.
type Registry struct {
	mu          sync.RWMutex
	evaluations map[string]Evaluate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{evaluations: make(map[string]Evaluate)}
}

// Register adds an evaluation function. Panics on duplicate names.
func (r *Registry) Register(name string, fn Evaluate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		panic(fmt.Sprintf("evaluation %q is nil", name))
	}
	if _, exists := r.evaluations[name]; exists {
		panic(fmt.Sprintf("evaluation %q already registered", name))
	}
	r.evaluations[name] = fn
}

// Lookup returns the evaluation function registered under name.
func (r *Registry) Lookup(name string) (Evaluate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
	return fn, nil
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.evaluations))
	for name := range r.evaluations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("score", EvaluateScore)
	r.Register("scoreEvaluationFunction", EvaluateScore)
	r.Register("better", EvaluateBetter)
	r.Register("betterEvaluationFunction", EvaluateBetter)
	return r
}

// DefaultRegistry holds the built-in evaluation functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// LookupEvaluation resolves name against the default registry.
func LookupEvaluation(name string) (Evaluate, error) {
	return defaultRegistry.Lookup(name)
}
