package scenario

// Unit is the return type generated for methods that declare no results.
type Unit = struct{}

// Debuggable bounds the mock type parameters promoted from an interface's
// associated types. Every Go value renders with %v, so the bound places no
// real restriction; it names the capability the generated code relies on.
type Debuggable = any

// The VerifyN family is the engine's call-interception entry point,
// indexed by argument count. Generated forwarding methods call the member
// of matching arity, passing their arguments positionally, and return the
// matched expectation's computed result unmodified.

// Verify0 verifies a call that takes no arguments.
func Verify0[R any](s *Scenario, data MethodData) R {
	return resultAs[R](s.verify(data, nil)())
}

// Verify1 verifies a call that takes one argument.
func Verify1[A0, R any](s *Scenario, data MethodData, a0 A0) R {
	return resultAs[R](s.verify(data, []any{a0})())
}

// Verify2 verifies a call that takes two arguments.
func Verify2[A0, A1, R any](s *Scenario, data MethodData, a0 A0, a1 A1) R {
	return resultAs[R](s.verify(data, []any{a0, a1})())
}

// Verify3 verifies a call that takes three arguments.
func Verify3[A0, A1, A2, R any](s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2})())
}

// Verify4 verifies a call that takes four arguments.
func Verify4[A0, A1, A2, A3, R any](s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2, a3 A3) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2, a3})())
}

// Verify5 verifies a call that takes five arguments.
func Verify5[A0, A1, A2, A3, A4, R any](
	s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4,
) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2, a3, a4})())
}

// Verify6 verifies a call that takes six arguments.
func Verify6[A0, A1, A2, A3, A4, A5, R any](
	s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5,
) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2, a3, a4, a5})())
}

// Verify7 verifies a call that takes seven arguments.
func Verify7[A0, A1, A2, A3, A4, A5, A6, R any](
	s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6,
) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2, a3, a4, a5, a6})())
}

// Verify8 verifies a call that takes eight arguments.
func Verify8[A0, A1, A2, A3, A4, A5, A6, A7, R any](
	s *Scenario, data MethodData, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7,
) R {
	return resultAs[R](s.verify(data, []any{a0, a1, a2, a3, a4, a5, a6, a7})())
}

// resultAs converts an action's untyped result to the method's declared
// return type. A nil result maps to the zero value so expectations built
// without an explicit action return zeros rather than panicking.
func resultAs[R any](v any) R {
	if v == nil {
		var zero R
		return zero
	}

	return v.(R)
}
