// Package scenario is the runtime half of the mockgen tool: the shared
// verification engine that generated mocks forward their calls to.
//
// Test code creates a Scenario, registers expectations through the
// generated `<Method>Call` builders, and hands the scenario to generated
// mocks. Every intercepted call is matched against the registered
// expectations; the matching expectation decides the call's outcome
// (return a value, panic, or delegate to a function).
package scenario

import (
	"fmt"
	"strings"
	"sync"
)

// TestReporter receives verification failures. *testing.T satisfies it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MethodData identifies one intercepted call: which mock instance it was
// made on, which implemented interface the method belongs to, and the
// method's name. The interface id disambiguates same-named methods coming
// from different interfaces implemented by the same mock.
type MethodData struct {
	MockID      int
	InterfaceID int
	MethodName  string
}

// Scenario stores expectations and matches intercepted calls against them.
// All state is guarded by an internal mutex: the live mock, every
// outstanding expectation builder, and the static-mock table may all touch
// the same scenario concurrently.
type Scenario struct {
	mu           sync.Mutex
	reporter     TestReporter
	nextMockID   int
	mockNames    map[int]string
	expectations []*Expectation
}

// New creates a scenario reporting failures to t. A nil reporter is
// allowed; failures then panic instead.
func New(t TestReporter) *Scenario {
	return &Scenario{
		reporter:  t,
		mockNames: map[int]string{},
	}
}

// NextMockID allocates an instance id and records displayName for it.
func (s *Scenario) NextMockID(displayName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextMockID
	s.nextMockID++
	s.mockNames[id] = displayName

	return id
}

// MockName returns the display name recorded for the given instance id.
// Generated String methods defer here.
func (s *Scenario) MockName(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name, ok := s.mockNames[id]; ok {
		return name
	}

	return fmt.Sprintf("mock #%d", id)
}

// SetMockName replaces the display name recorded for an instance id.
// Generated SetDisplayName methods defer here.
func (s *Scenario) SetMockName(id int, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mockNames[id] = displayName
}

// Expect registers an expectation built by a generated CallMatch builder.
func (s *Scenario) Expect(e *Expectation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expectations = append(s.expectations, e)
}

// VerifyAll fails if any registered expectation was never matched. Call it
// at the end of the test (or via t.Cleanup).
func (s *Scenario) VerifyAll() {
	s.mu.Lock()
	unmet := make([]string, 0, len(s.expectations))

	for _, e := range s.expectations {
		if !e.consumed {
			unmet = append(unmet, e.describe())
		}
	}
	s.mu.Unlock()

	if len(unmet) > 0 {
		s.fail("unmet expectations:\n\t%s", strings.Join(unmet, "\n\t"))
	}
}

// verify matches an intercepted call against the registered expectations,
// consumes the first match, and returns a thunk that performs the
// configured action. An unmatched call is a verification failure.
func (s *Scenario) verify(data MethodData, args []any) func() any {
	s.mu.Lock()

	for _, e := range s.expectations {
		if !e.accepts(data, args) {
			continue
		}

		e.consumed = true
		act := e.action
		s.mu.Unlock()

		return func() any { return act.invoke(args) }
	}

	name := s.mockNames[data.MockID]
	s.mu.Unlock()

	if name == "" {
		name = fmt.Sprintf("mock #%d", data.MockID)
	}

	s.fail("unexpected call to %s.%s (interface id %d): no matching expectation",
		name, data.MethodName, data.InterfaceID)

	return func() any { return nil }
}

// fail reports through the attached reporter, or panics without one.
func (s *Scenario) fail(format string, args ...any) {
	if s.reporter != nil {
		s.reporter.Helper()
		s.reporter.Fatalf(format, args...)

		return
	}

	panic(fmt.Sprintf(format, args...))
}

// Expectation is one expected call: its identity, its argument matchers,
// and the action to perform when matched. Each expectation is consumed by
// at most one call, in registration order.
type Expectation struct {
	mockID      int
	interfaceID int
	methodName  string
	matchers    []boxedMatcher
	action      action
	consumed    bool
}

// newExpectation is used by the generated CallMatchN constructors.
func newExpectation(mockID, interfaceID int, methodName string, matchers ...boxedMatcher) *Expectation {
	return &Expectation{
		mockID:      mockID,
		interfaceID: interfaceID,
		methodName:  methodName,
		matchers:    matchers,
	}
}

// accepts reports whether the call identified by data with the given
// arguments satisfies this expectation.
func (e *Expectation) accepts(data MethodData, args []any) bool {
	if e.consumed || e.mockID != data.MockID || e.interfaceID != data.InterfaceID ||
		e.methodName != data.MethodName || len(e.matchers) != len(args) {
		return false
	}

	for i, m := range e.matchers {
		if !m.matches(args[i]) {
			return false
		}
	}

	return true
}

// describe renders the expectation for failure messages.
func (e *Expectation) describe() string {
	descs := make([]string, len(e.matchers))
	for i, m := range e.matchers {
		descs[i] = m.describe()
	}

	return fmt.Sprintf("%s(%s) on mock #%d", e.methodName, strings.Join(descs, ", "), e.mockID)
}

func (e *Expectation) andReturn(v any) *Expectation {
	e.action = action{kind: actionReturn, value: v}
	return e
}

func (e *Expectation) andPanic(v any) *Expectation {
	e.action = action{kind: actionPanic, value: v}
	return e
}

func (e *Expectation) andRun(fn func([]any) any) *Expectation {
	e.action = action{kind: actionRun, run: fn}
	return e
}

// action is the configured outcome of a matched call.
type action struct {
	kind  actionKind
	value any
	run   func([]any) any
}

type actionKind int

const (
	actionReturn actionKind = iota
	actionPanic
	actionRun
)

// invoke performs the action for the given call arguments.
func (a action) invoke(args []any) any {
	switch a.kind {
	case actionPanic:
		panic(a.value)
	case actionRun:
		return a.run(args)
	default:
		return a.value
	}
}
