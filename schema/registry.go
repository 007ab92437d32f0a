package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Global class registry. Domain packages register their classes during
// initialization; the registry is then a read-only lookup table for the
// lifetime of the process.
var (
	registryMu    sync.RWMutex
	classRegistry = make(map[string]*Class)
)

// Register validates a class declaration and stores it in the global
// registry under its local name. Re-registering a name overwrites the
// previous declaration, which lets applications override defaults.
//
// Registration is where declaration-processing errors surface: a field with
// an unrecognized value type or an annotation value outside its allowed
// domain fails here rather than at synthesis time.
func Register(c *Class) error {
	if c == nil {
		return fmt.Errorf("cannot register nil class")
	}
	if c.Name() == "" {
		return fmt.Errorf("cannot register class with empty name")
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("register class %s: %w", c.Name(), err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	classRegistry[c.Name()] = c
	return nil
}

// MustRegister is Register for init functions; it panics on error.
func MustRegister(c *Class) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

// Lookup retrieves a registered class by local name.
func Lookup(name string) (*Class, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := classRegistry[name]
	return c, ok
}

// RegisteredClasses returns the sorted names of all registered classes.
// Useful for debugging and introspection.
func RegisteredClasses() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(classRegistry))
	for name := range classRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearRegistry removes all registered classes.
// This is primarily useful for testing.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	classRegistry = make(map[string]*Class)
}
