package replica

import (
	"reflect"
	"sync"
)

var (
	planRegistry = make(map[reflect.Type]*typePlan)
	planMu       sync.RWMutex
)

// plansFor returns a cached traversal plan for rt or builds a new one.
func plansFor(rt reflect.Type) *typePlan {
	// Fast path: read-lock cache check
	planMu.RLock()
	if cached, ok := planRegistry[rt]; ok {
		planMu.RUnlock()
		return cached
	}
	planMu.RUnlock()

	// Slow path: build and cache with write-lock
	planMu.Lock()
	defer planMu.Unlock()

	// Double-check pattern
	if cached, ok := planRegistry[rt]; ok {
		return cached
	}

	plan := buildTypePlan(rt)
	planRegistry[rt] = plan
	return plan
}

// Reset clears the traversal plan cache.
// This is primarily useful for test isolation.
func Reset() {
	planMu.Lock()
	defer planMu.Unlock()
	planRegistry = make(map[reflect.Type]*typePlan)
}
