// Package basic demonstrates the core mocking flow: a generated mock
// forwarding interface calls into a scenario, with expectations queued
// ahead of the code under test.
package basic

//go:generate go run github.com/scenariotest/scenario/mockgen Ops

// Ops covers single return values, multiple return values, and void
// methods.
type Ops interface {
	Add(a, b int) int
	Store(key string, value any) (int, error)
	Log(message string)
}

// PerformOps drives every Ops member once.
func PerformOps(ops Ops) error {
	sum := ops.Add(1, 2)

	_, err := ops.Store("sum", sum)
	if err != nil {
		return err
	}

	ops.Log("stored sum")

	return nil
}
