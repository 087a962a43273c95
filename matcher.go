package scenario

import (
	"fmt"
	"reflect"
)

// Matcher decides whether one argument of type T satisfies an expectation.
// Generated expectation builders take one Matcher per method argument.
type Matcher[T any] interface {
	// Matches reports whether v satisfies the expectation.
	Matches(v T) bool
	// Describe renders the matcher for failure messages.
	Describe() string
}

// Eq matches arguments deeply equal to want.
func Eq[T any](want T) Matcher[T] {
	return eqMatcher[T]{want: want}
}

// Any matches every argument of type T.
func Any[T any]() Matcher[T] {
	return anyMatcher[T]{}
}

// Satisfies matches arguments accepted by pred. The description appears in
// failure messages.
func Satisfies[T any](description string, pred func(T) bool) Matcher[T] {
	return predMatcher[T]{description: description, pred: pred}
}

// ValueMatcher is the shape shared by assertion-library matchers.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type ValueMatcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// Should adapts an assertion-library matcher to an argument matcher, so
// expectation builders can take e.g. gomega matchers directly:
//
//	m.AddCall(scenario.Should[int](BeNumerically(">", 0))).Return(42)
func Should[T any](matcher ValueMatcher) Matcher[T] {
	return shouldMatcher[T]{matcher: matcher}
}

type eqMatcher[T any] struct {
	want T
}

func (m eqMatcher[T]) Matches(v T) bool {
	return reflect.DeepEqual(v, m.want)
}

func (m eqMatcher[T]) Describe() string {
	return fmt.Sprintf("%v", m.want)
}

type anyMatcher[T any] struct{}

func (anyMatcher[T]) Matches(T) bool {
	return true
}

func (anyMatcher[T]) Describe() string {
	return "<any>"
}

type predMatcher[T any] struct {
	description string
	pred        func(T) bool
}

func (m predMatcher[T]) Matches(v T) bool {
	return m.pred(v)
}

func (m predMatcher[T]) Describe() string {
	return m.description
}

type shouldMatcher[T any] struct {
	matcher ValueMatcher
}

func (m shouldMatcher[T]) Matches(v T) bool {
	ok, err := m.matcher.Match(v)

	return ok && err == nil
}

func (m shouldMatcher[T]) Describe() string {
	var zero T

	return m.matcher.FailureMessage(zero)
}

// boxedMatcher erases a typed matcher so the scenario can store matchers
// for arguments of mixed types.
type boxedMatcher struct {
	matches  func(any) bool
	describe func() string
}

// box erases m. A call argument of some other dynamic type never matches.
func box[T any](m Matcher[T]) boxedMatcher {
	return boxedMatcher{
		matches: func(v any) bool {
			tv, ok := v.(T)
			if !ok {
				// An untyped nil argument still matches a nil-able T.
				if v != nil {
					return false
				}

				var zero T

				return m.Matches(zero)
			}

			return m.Matches(tv)
		},
		describe: m.Describe,
	}
}
