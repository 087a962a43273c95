package scenario_test

import (
	"strings"
	"testing"

	"github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/scenariotest/scenario"
)

// TestEq_MatchesItself verifies Eq accepts any value it was built from.
func TestEq_MatchesItself(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int().Draw(rt, "v")

		if !scenario.Eq(v).Matches(v) {
			rt.Errorf("Eq(%d) should match %d", v, v)
		}
	})
}

// TestEq_RejectsDifferentValues verifies Eq rejects values that differ.
func TestEq_RejectsDifferentValues(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		want := rapid.Int().Draw(rt, "want")
		got := rapid.Int().Draw(rt, "got")

		if want == got {
			return
		}

		if scenario.Eq(want).Matches(got) {
			rt.Errorf("Eq(%d) should not match %d", want, got)
		}
	})
}

// TestEq_DeepEquality verifies Eq compares composite values structurally.
func TestEq_DeepEquality(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string
		Tags []string
	}

	a := payload{Name: "x", Tags: []string{"one", "two"}}
	b := payload{Name: "x", Tags: []string{"one", "two"}}

	if !scenario.Eq(a).Matches(b) {
		t.Error("structurally equal values should match")
	}

	b.Tags[1] = "three"

	if scenario.Eq(a).Matches(b) {
		t.Error("structurally different values should not match")
	}
}

// TestAny_MatchesEverything verifies Any accepts every value of its type.
func TestAny_MatchesEverything(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.String().Draw(rt, "v")

		if !scenario.Any[string]().Matches(v) {
			rt.Errorf("Any should match %q", v)
		}
	})
}

// TestSatisfies_DelegatesToPredicate verifies Satisfies follows its
// predicate and surfaces its description.
func TestSatisfies_DelegatesToPredicate(t *testing.T) {
	t.Parallel()

	m := scenario.Satisfies("positive", func(v int) bool { return v > 0 })

	if !m.Matches(3) {
		t.Error("expected 3 to satisfy the predicate")
	}

	if m.Matches(-3) {
		t.Error("expected -3 to fail the predicate")
	}

	if m.Describe() != "positive" {
		t.Errorf("expected description %q, got %q", "positive", m.Describe())
	}
}

// TestShould_AdaptsGomegaMatchers verifies assertion-library matchers work
// as argument matchers through Should.
func TestShould_AdaptsGomegaMatchers(t *testing.T) {
	t.Parallel()

	positive := scenario.Should[int](gomega.BeNumerically(">", 0))

	if !positive.Matches(3) {
		t.Error("expected 3 to match >0")
	}

	if positive.Matches(-3) {
		t.Error("expected -3 to fail >0")
	}

	substr := scenario.Should[string](gomega.ContainSubstring("boom"))

	if !substr.Matches("kaboom") {
		t.Error("expected kaboom to contain boom")
	}

	if substr.Matches("quiet") {
		t.Error("expected quiet to fail the substring match")
	}
}

// TestMatchers_GateExpectations verifies matchers of a different dynamic
// type than the call argument never accept it.
func TestMatchers_GateExpectations(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	s := scenario.New(rec)
	data := scenario.MethodData{MockID: 0, InterfaceID: 1, MethodName: "Label"}

	scenario.NewCallMatch1[string, scenario.Unit](s, 0, 1, "Label",
		scenario.Satisfies("short", func(v string) bool { return len(v) < 4 }),
	)

	scenario.Verify1[string, scenario.Unit](s, data, "much too long")

	if len(rec.failures) != 1 {
		t.Fatalf("expected one failure, got %d", len(rec.failures))
	}

	if !strings.Contains(rec.failures[0], "Label") {
		t.Errorf("failure should name the method: %q", rec.failures[0])
	}
}

// TestEq_NilPointerArgument verifies a nil pointer argument matches an
// expectation built from a nil pointer.
func TestEq_NilPointerArgument(t *testing.T) {
	t.Parallel()

	s := scenario.New(t)
	data := scenario.MethodData{MockID: 0, InterfaceID: 1, MethodName: "Store"}

	scenario.NewCallMatch1[*int, scenario.Unit](s, 0, 1, "Store", scenario.Eq[*int](nil))
	scenario.Verify1[*int, scenario.Unit](s, data, nil)

	s.VerifyAll()
}
