package scenario

import (
	"fmt"
	"sync"
)

// Static mocks intercept package-level functions, which have no receiver to
// route through. A process-wide table maps each interface id to the mock
// currently claiming it; generated free-function bodies look their scenario
// up here. At most one static mock per interface may be live at a time, and
// its generated Close method releases the claim.

type staticEntry struct {
	mockID   int
	scenario *Scenario
}

// unexported variables.
var (
	staticMu    sync.Mutex
	staticMocks = map[int]staticEntry{}
)

// RegisterStatic claims the given interface ids for one static mock. It
// panics without registering anything if any id is already claimed.
func RegisterStatic(interfaceIDs []int, mockID int, s *Scenario) {
	staticMu.Lock()
	defer staticMu.Unlock()

	for _, id := range interfaceIDs {
		if _, ok := staticMocks[id]; ok {
			panic(fmt.Sprintf(
				"scenario: static mock for interface id %d is already active; "+
					"close the existing mock before creating another", id,
			))
		}
	}

	for _, id := range interfaceIDs {
		staticMocks[id] = staticEntry{mockID: mockID, scenario: s}
	}
}

// UnregisterStatic releases previously claimed interface ids. Ids that are
// not claimed are ignored, so a generated Close method is safe to call twice.
func UnregisterStatic(interfaceIDs []int) {
	staticMu.Lock()
	defer staticMu.Unlock()

	for _, id := range interfaceIDs {
		delete(staticMocks, id)
	}
}

// LookupStatic resolves the mock currently claiming an interface id. It
// panics when no static mock is active, since the intercepted function has
// no other implementation to fall back to.
func LookupStatic(interfaceID int) (int, *Scenario) {
	staticMu.Lock()
	defer staticMu.Unlock()

	entry, ok := staticMocks[interfaceID]
	if !ok {
		panic(fmt.Sprintf(
			"scenario: no static mock is active for interface id %d; "+
				"create the mock before calling the function under test", interfaceID,
		))
	}

	return entry.mockID, entry.scenario
}
