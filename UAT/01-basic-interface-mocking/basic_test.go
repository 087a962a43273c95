package basic_test

import (
	"errors"
	"testing"

	"github.com/scenariotest/scenario"

	basic "github.com/scenariotest/scenario/UAT/01-basic-interface-mocking"
)

// TestPerformOps_HappyPath queues one expectation per dependency call,
// runs the code under test, and verifies nothing was left unmet.
func TestPerformOps_HappyPath(t *testing.T) {
	t.Parallel()

	s := scenario.New(t)
	ops := basic.MockOps(s)

	ops.AddCall(scenario.Eq(1), scenario.Eq(2)).Return(3)
	ops.StoreCall(scenario.Eq("sum"), scenario.Eq[any](3)).
		Return(basic.OpsMockStoreReturns{Result0: 1, Result1: nil})
	ops.LogCall(scenario.Eq("stored sum")).Return(scenario.Unit{})

	err := basic.PerformOps(ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.VerifyAll()
}

// TestPerformOps_StoreFailure injects an error from the middle dependency
// and checks it propagates.
func TestPerformOps_StoreFailure(t *testing.T) {
	t.Parallel()

	s := scenario.New(t)
	ops := basic.NewNamedOpsMock(s, "ops")
	storeErr := errors.New("store is full")

	ops.AddCall(scenario.Any[int](), scenario.Any[int]()).Return(7)
	ops.StoreCall(scenario.Any[string](), scenario.Any[any]()).
		Return(basic.OpsMockStoreReturns{Result1: storeErr})

	err := basic.PerformOps(ops)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the injected error, got %v", err)
	}

	s.VerifyAll()
}

// TestPerformOps_RunAction computes a return value from the recorded
// arguments.
func TestPerformOps_RunAction(t *testing.T) {
	t.Parallel()

	s := scenario.New(t)
	ops := basic.MockOps(s)

	ops.AddCall(scenario.Any[int](), scenario.Any[int]()).
		Run(func(a, b int) int { return a + b })
	ops.StoreCall(scenario.Eq("sum"), scenario.Eq[any](3)).
		Return(basic.OpsMockStoreReturns{Result0: 1})
	ops.LogCall(scenario.Any[string]()).Return(scenario.Unit{})

	err := basic.PerformOps(ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.VerifyAll()
}
