package ai

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// DefaultProvider backs the coach when no provider is configured.
const DefaultProvider = "gemini"

// Factory builds a provider for an API key.
type Factory func(apiKey string) (Provider, error)

// backend is a registered provider: how to build it and which environment
// variable may carry its key.
type backend struct {
	envVar string
	build  Factory
}

var (
	mu       sync.RWMutex
	backends = map[string]backend{}
)

// Register adds a provider under name. envVar may be empty when the provider
// has no environment override. A later registration replaces an earlier one.
func Register(name, envVar string, build Factory) {
	mu.Lock()
	defer mu.Unlock()
	backends[name] = backend{envVar: envVar, build: build}
}

// GetProvider builds the named provider. An empty name selects
// DefaultProvider.
func GetProvider(name, apiKey string) (Provider, error) {
	if name == "" {
		name = DefaultProvider
	}
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (available: %s)", name, strings.Join(ListProviders(), ", "))
	}
	return b.build(apiKey)
}

// EnvVar returns the environment variable consulted for provider's key, or ""
// when there is none.
func EnvVar(provider string) string {
	mu.RLock()
	defer mu.RUnlock()
	return backends[provider].envVar
}

// ListProviders returns the registered provider names in sorted order.
func ListProviders() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}
