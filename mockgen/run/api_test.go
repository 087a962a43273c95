package run_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/scenariotest/scenario/mockgen/run"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
)

func TestMocked_EchoesDeclaration(t *testing.T) {
	t.Parallel()

	code, err := run.Mocked(`type ApiGreeter interface {
	Greet(name string) string
}`, run.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"type ApiGreeter interface",
		"type ApiGreeterMock struct",
		"var _ ApiGreeter = (*ApiGreeterMock)(nil)",
		"func MockApiGreeter(s *scenario.Scenario) *ApiGreeterMock",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("output missing %q\n\n%s", want, code)
		}
	}
}

func TestMocked_SuppressSource(t *testing.T) {
	t.Parallel()

	code, err := run.Mocked(`type ApiQuiet interface {
	Do()
}`, run.Options{SuppressSource: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(code, "type ApiQuiet interface") {
		t.Errorf("echo should be suppressed:\n%s", code)
	}

	if strings.Contains(code, "var _ ApiQuiet") {
		t.Errorf("satisfaction check needs the echoed declaration:\n%s", code)
	}
}

func TestMocked_DefaultsPackageName(t *testing.T) {
	t.Parallel()

	code, err := run.Mocked("type ApiBare interface{ Do() }", run.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(code, "package mocks") {
		t.Errorf("expected the fallback package clause:\n%s", code)
	}
}

func TestMocked_KeepsSourcePackageName(t *testing.T) {
	t.Parallel()

	code, err := run.Mocked(`package gadget

type ApiPackaged interface{ Do() }`, run.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(code, "package gadget") {
		t.Errorf("expected the source package clause:\n%s", code)
	}
}

func TestMocked_RegistersForExtension(t *testing.T) {
	t.Parallel()

	_, err := run.Mocked("type ApiBase interface{ Close() error }", run.Options{})
	if err != nil {
		t.Fatalf("unexpected error mocking the base: %v", err)
	}

	code, err := run.Mocked(`type ApiDerived interface {
	ApiBase
	Open(path string) error
}`, run.Options{})
	if err != nil {
		t.Fatalf("unexpected error mocking the extension: %v", err)
	}

	for _, want := range []string{
		"func (m *ApiDerivedMock) Close() error",
		"func (m *ApiDerivedMock) Open(path string) error",
		`return "ApiBase+ApiDerived"`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("output missing %q\n\n%s", want, code)
		}
	}
}

func TestMocked_RefsQualifyBases(t *testing.T) {
	t.Parallel()

	_, err := run.Mocked("type ApiRefBase interface{ Ping() }", run.Options{})
	if err != nil {
		t.Fatalf("unexpected error mocking the base: %v", err)
	}

	code, err := run.Mocked(`type ApiRefDerived interface {
	ApiRefBase
}`, run.Options{Refs: map[string]string{"ApiRefBase": "example.com/refpkg"}})
	if err != nil {
		t.Fatalf("unexpected error mocking the extension: %v", err)
	}

	if !strings.Contains(code, `return "example.com/refpkg.ApiRefBase+ApiRefDerived"`) {
		t.Errorf("expected the base to be qualified:\n%s", code)
	}
}

// TestMocked_RefsPickAmongSameNamedBases verifies a ref selects the right
// registration when two module paths declare the same interface name.
func TestMocked_RefsPickAmongSameNamedBases(t *testing.T) {
	t.Parallel()

	_, err := run.Mocked("type ApiDup interface{ FromPathA() }",
		run.Options{ModulePath: "example.com/a"})
	if err != nil {
		t.Fatalf("unexpected error mocking the first base: %v", err)
	}

	_, err = run.Mocked("type ApiDup interface{ FromPathB() }",
		run.Options{ModulePath: "example.com/b"})
	if err != nil {
		t.Fatalf("unexpected error mocking the second base: %v", err)
	}

	code, err := run.Mocked(`type ApiDupDerived interface {
	ApiDup
}`, run.Options{Refs: map[string]string{"ApiDup": "example.com/a"}})
	if err != nil {
		t.Fatalf("unexpected error mocking the extension: %v", err)
	}

	if !strings.Contains(code, "func (m *ApiDupDerivedMock) FromPathA()") {
		t.Errorf("expected the pinned path's method:\n%s", code)
	}

	if strings.Contains(code, "FromPathB") {
		t.Errorf("expected no member from the other path:\n%s", code)
	}
}

func TestMocked_UnregisteredBase(t *testing.T) {
	t.Parallel()

	_, err := run.Mocked(`type ApiOrphan interface {
	ApiNeverRegistered
}`, run.Options{})
	if !errors.Is(err, resolve.ErrUnresolvedBase) {
		t.Errorf("expected ErrUnresolvedBase, got %v", err)
	}
}

func TestMocked_ParseError(t *testing.T) {
	t.Parallel()

	_, err := run.Mocked("type Broken interface {", run.Options{})
	if err == nil {
		t.Error("expected a parse error")
	}
}

func TestMockForInterfaces_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := run.MockForInterfaces("", nil, run.Options{})
	if !errors.Is(err, resolve.ErrMissingConfiguration) {
		t.Errorf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestMockForInterfaces_CombinesInterfaces(t *testing.T) {
	t.Parallel()

	code, err := run.MockForInterfaces("ApiComboMock", []run.InterfaceSource{
		{ModPath: "self", Source: "type ApiReader interface{ Read() string }"},
		{ModPath: "self", Source: "type ApiWriter interface{ Write(s string) }"},
	}, run.Options{PkgName: "combo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"package combo",
		"func (m *ApiComboMock) Read() string",
		"func (m *ApiComboMock) Write(s string)",
		`return "ApiReader+ApiWriter"`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("output missing %q\n\n%s", want, code)
		}
	}
}

// TestMockForInterfaces_KeepsSelfTypeArguments verifies an instantiated
// self-reference in a foreign interface's method keeps its type arguments
// when qualified.
func TestMockForInterfaces_KeepsSelfTypeArguments(t *testing.T) {
	t.Parallel()

	code, err := run.MockForInterfaces("ApiBoxMock", []run.InterfaceSource{
		{ModPath: "example.com/gen", Source: "type ApiBox[T any] interface{ Clone() ApiBox[T] }"},
	}, run.Options{PkgName: "boxed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(code, "Clone() gen.ApiBox[T]") {
		t.Errorf("expected the self type arguments to survive qualification:\n%s", code)
	}
}

func TestMockForInterfaces_BaseMustAppearEarlier(t *testing.T) {
	t.Parallel()

	_, err := run.MockForInterfaces("ApiOrderMock", []run.InterfaceSource{
		{ModPath: "self", Source: `type ApiFirst interface {
	ApiSecond
}`},
		{ModPath: "self", Source: "type ApiSecond interface{ Do() }"},
	}, run.Options{})
	if !errors.Is(err, resolve.ErrUnresolvedBase) {
		t.Errorf("expected ErrUnresolvedBase, got %v", err)
	}
}

func TestMockedExtern_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := run.MockedExtern("func ApiFree() {}", run.Options{})
	if !errors.Is(err, resolve.ErrMissingConfiguration) {
		t.Errorf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestMockedExtern_Generates(t *testing.T) {
	t.Parallel()

	code, err := run.MockedExtern(`func ApiDial(addr string) error { return nil }

func ApiClose() error { return nil }`, run.Options{MockName: "ApiConnMock"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"type ApiConnMock struct",
		"func ApiDial(addr string) error",
		"func ApiClose() error",
		"func (m *ApiConnMock) Close()",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("output missing %q\n\n%s", want, code)
		}
	}
}

func TestMockedExtern_RejectsNonFunctions(t *testing.T) {
	t.Parallel()

	_, err := run.MockedExtern(`type ApiStray struct{}

func ApiOk() {}`, run.Options{MockName: "ApiStrayMock"})
	if !errors.Is(err, resolve.ErrUnsupportedShape) {
		t.Errorf("expected ErrUnsupportedShape, got %v", err)
	}
}
