package schema

import (
	"fmt"
	"sort"
	"sync"
)

type GroupRegistry map[string]*Schema

// groups is the internal registry of group ids to their schemas.
var (
	groups = GroupRegistry{}
	mu     sync.RWMutex
)

// Register adds a schema to the registry under its group id.
func Register(s *Schema) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := groups[s.GroupID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGroup, s.GroupID())
	}
	groups[s.GroupID()] = s
	return nil
}

// MustRegister registers a schema and panics on error.
// Used by plugin packages to register their group at init time.
func MustRegister(s *Schema) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the schema registered for group.
func Lookup(group string) (*Schema, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := groups[group]
	return s, ok
}

// Groups returns the registered group ids in sorted order.
func Groups() []string {
	mu.RLock()
	defer mu.RUnlock()

	list := make([]string, 0, len(groups))
	for group := range groups {
		list = append(list, group)
	}
	sort.Strings(list)
	return list
}

// RegistryForTesting returns the group registry for test assertions.
func RegistryForTesting() GroupRegistry {
	mu.RLock()
	defer mu.RUnlock()
	return groups
}
