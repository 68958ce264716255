package provider

import (
	"fmt"
	"sort"
	"sync"

	"voice2text/internal/app/api"
)

// Creator builds a transcriber from a generic settings map. Provider
// packages register one of these from init() and get picked up through
// blank imports in the binaries.
type Creator func(settings map[string]interface{}) (api.Transcriber, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Creator)
)

// Register makes a provider type available under the given name. Later
// registrations replace earlier ones, which keeps tests free to stub types.
func Register(providerType string, creator Creator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[providerType] = creator
}

// Create instantiates a registered provider type with the given settings.
func Create(providerType string, settings map[string]interface{}) (api.Transcriber, error) {
	registryMu.RLock()
	creator, ok := registry[providerType]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("provider type %q not registered", providerType)
	}
	return creator(settings)
}

// Registered returns the registered provider type names, sorted for stable
// CLI and API output.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
