package scenario

// The CallMatchN family carries a registered expectation together with the
// method's typed signature. Generated `<Method>Call` builders construct one
// via the constructor of matching arity; the caller then picks an action
// with Return, PanicWith, or Run. An expectation left without an action
// yields zero values when matched.

// CallMatch0 is an expectation for a method with no arguments.
type CallMatch0[R any] struct {
	exp *Expectation
}

// NewCallMatch0 registers an expectation for a zero-argument method.
func NewCallMatch0[R any](s *Scenario, mockID, interfaceID int, method string) CallMatch0[R] {
	exp := newExpectation(mockID, interfaceID, method)
	s.Expect(exp)

	return CallMatch0[R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch0[R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch0[R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn and return its result.
func (c CallMatch0[R]) Run(fn func() R) {
	c.exp.andRun(func(_ []any) any { return fn() })
}

// CallMatch1 is an expectation for a one-argument method.
type CallMatch1[A0, R any] struct {
	exp *Expectation
}

// NewCallMatch1 registers an expectation for a one-argument method.
func NewCallMatch1[A0, R any](
	s *Scenario, mockID, interfaceID int, method string, m0 Matcher[A0],
) CallMatch1[A0, R] {
	exp := newExpectation(mockID, interfaceID, method, box(m0))
	s.Expect(exp)

	return CallMatch1[A0, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch1[A0, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch1[A0, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch1[A0, R]) Run(fn func(A0) R) {
	c.exp.andRun(func(args []any) any {
		return fn(resultAs[A0](args[0]))
	})
}

// CallMatch2 is an expectation for a two-argument method.
type CallMatch2[A0, A1, R any] struct {
	exp *Expectation
}

// NewCallMatch2 registers an expectation for a two-argument method.
func NewCallMatch2[A0, A1, R any](
	s *Scenario, mockID, interfaceID int, method string, m0 Matcher[A0], m1 Matcher[A1],
) CallMatch2[A0, A1, R] {
	exp := newExpectation(mockID, interfaceID, method, box(m0), box(m1))
	s.Expect(exp)

	return CallMatch2[A0, A1, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch2[A0, A1, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch2[A0, A1, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch2[A0, A1, R]) Run(fn func(A0, A1) R) {
	c.exp.andRun(func(args []any) any {
		return fn(resultAs[A0](args[0]), resultAs[A1](args[1]))
	})
}

// CallMatch3 is an expectation for a three-argument method.
type CallMatch3[A0, A1, A2, R any] struct {
	exp *Expectation
}

// NewCallMatch3 registers an expectation for a three-argument method.
func NewCallMatch3[A0, A1, A2, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2],
) CallMatch3[A0, A1, A2, R] {
	exp := newExpectation(mockID, interfaceID, method, box(m0), box(m1), box(m2))
	s.Expect(exp)

	return CallMatch3[A0, A1, A2, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch3[A0, A1, A2, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch3[A0, A1, A2, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch3[A0, A1, A2, R]) Run(fn func(A0, A1, A2) R) {
	c.exp.andRun(func(args []any) any {
		return fn(resultAs[A0](args[0]), resultAs[A1](args[1]), resultAs[A2](args[2]))
	})
}

// CallMatch4 is an expectation for a four-argument method.
type CallMatch4[A0, A1, A2, A3, R any] struct {
	exp *Expectation
}

// NewCallMatch4 registers an expectation for a four-argument method.
func NewCallMatch4[A0, A1, A2, A3, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3],
) CallMatch4[A0, A1, A2, A3, R] {
	exp := newExpectation(mockID, interfaceID, method, box(m0), box(m1), box(m2), box(m3))
	s.Expect(exp)

	return CallMatch4[A0, A1, A2, A3, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch4[A0, A1, A2, A3, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch4[A0, A1, A2, A3, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch4[A0, A1, A2, A3, R]) Run(fn func(A0, A1, A2, A3) R) {
	c.exp.andRun(func(args []any) any {
		return fn(
			resultAs[A0](args[0]), resultAs[A1](args[1]),
			resultAs[A2](args[2]), resultAs[A3](args[3]),
		)
	})
}

// CallMatch5 is an expectation for a five-argument method.
type CallMatch5[A0, A1, A2, A3, A4, R any] struct {
	exp *Expectation
}

// NewCallMatch5 registers an expectation for a five-argument method.
func NewCallMatch5[A0, A1, A2, A3, A4, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3], m4 Matcher[A4],
) CallMatch5[A0, A1, A2, A3, A4, R] {
	exp := newExpectation(mockID, interfaceID, method, box(m0), box(m1), box(m2), box(m3), box(m4))
	s.Expect(exp)

	return CallMatch5[A0, A1, A2, A3, A4, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch5[A0, A1, A2, A3, A4, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch5[A0, A1, A2, A3, A4, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch5[A0, A1, A2, A3, A4, R]) Run(fn func(A0, A1, A2, A3, A4) R) {
	c.exp.andRun(func(args []any) any {
		return fn(
			resultAs[A0](args[0]), resultAs[A1](args[1]), resultAs[A2](args[2]),
			resultAs[A3](args[3]), resultAs[A4](args[4]),
		)
	})
}

// CallMatch6 is an expectation for a six-argument method.
type CallMatch6[A0, A1, A2, A3, A4, A5, R any] struct {
	exp *Expectation
}

// NewCallMatch6 registers an expectation for a six-argument method.
func NewCallMatch6[A0, A1, A2, A3, A4, A5, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2],
	m3 Matcher[A3], m4 Matcher[A4], m5 Matcher[A5],
) CallMatch6[A0, A1, A2, A3, A4, A5, R] {
	exp := newExpectation(
		mockID, interfaceID, method,
		box(m0), box(m1), box(m2), box(m3), box(m4), box(m5),
	)
	s.Expect(exp)

	return CallMatch6[A0, A1, A2, A3, A4, A5, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch6[A0, A1, A2, A3, A4, A5, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch6[A0, A1, A2, A3, A4, A5, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch6[A0, A1, A2, A3, A4, A5, R]) Run(fn func(A0, A1, A2, A3, A4, A5) R) {
	c.exp.andRun(func(args []any) any {
		return fn(
			resultAs[A0](args[0]), resultAs[A1](args[1]), resultAs[A2](args[2]),
			resultAs[A3](args[3]), resultAs[A4](args[4]), resultAs[A5](args[5]),
		)
	})
}

// CallMatch7 is an expectation for a seven-argument method.
type CallMatch7[A0, A1, A2, A3, A4, A5, A6, R any] struct {
	exp *Expectation
}

// NewCallMatch7 registers an expectation for a seven-argument method.
func NewCallMatch7[A0, A1, A2, A3, A4, A5, A6, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3],
	m4 Matcher[A4], m5 Matcher[A5], m6 Matcher[A6],
) CallMatch7[A0, A1, A2, A3, A4, A5, A6, R] {
	exp := newExpectation(
		mockID, interfaceID, method,
		box(m0), box(m1), box(m2), box(m3), box(m4), box(m5), box(m6),
	)
	s.Expect(exp)

	return CallMatch7[A0, A1, A2, A3, A4, A5, A6, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch7[A0, A1, A2, A3, A4, A5, A6, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch7[A0, A1, A2, A3, A4, A5, A6, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch7[A0, A1, A2, A3, A4, A5, A6, R]) Run(fn func(A0, A1, A2, A3, A4, A5, A6) R) {
	c.exp.andRun(func(args []any) any {
		return fn(
			resultAs[A0](args[0]), resultAs[A1](args[1]), resultAs[A2](args[2]),
			resultAs[A3](args[3]), resultAs[A4](args[4]), resultAs[A5](args[5]),
			resultAs[A6](args[6]),
		)
	})
}

// CallMatch8 is an expectation for an eight-argument method.
type CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R any] struct {
	exp *Expectation
}

// NewCallMatch8 registers an expectation for an eight-argument method.
func NewCallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R any](
	s *Scenario, mockID, interfaceID int, method string,
	m0 Matcher[A0], m1 Matcher[A1], m2 Matcher[A2], m3 Matcher[A3],
	m4 Matcher[A4], m5 Matcher[A5], m6 Matcher[A6], m7 Matcher[A7],
) CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R] {
	exp := newExpectation(
		mockID, interfaceID, method,
		box(m0), box(m1), box(m2), box(m3), box(m4), box(m5), box(m6), box(m7),
	)
	s.Expect(exp)

	return CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R]{exp: exp}
}

// Return makes the matched call return v.
func (c CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R]) Return(v R) { c.exp.andReturn(v) }

// PanicWith makes the matched call panic with v.
func (c CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R]) PanicWith(v any) { c.exp.andPanic(v) }

// Run makes the matched call invoke fn with the call's arguments.
func (c CallMatch8[A0, A1, A2, A3, A4, A5, A6, A7, R]) Run(
	fn func(A0, A1, A2, A3, A4, A5, A6, A7) R,
) {
	c.exp.andRun(func(args []any) any {
		return fn(
			resultAs[A0](args[0]), resultAs[A1](args[1]), resultAs[A2](args[2]),
			resultAs[A3](args[3]), resultAs[A4](args[4]), resultAs[A5](args[5]),
			resultAs[A6](args[6]), resultAs[A7](args[7]),
		)
	})
}
