package run_test

import (
	"bytes"
	"errors"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/dave/dst"

	"github.com/scenariotest/scenario/mockgen/run"
	load "github.com/scenariotest/scenario/mockgen/run/2_load"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
)

// fakeFileSystem records the files written through it.
type fakeFileSystem struct {
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: map[string][]byte{}}
}

func (f *fakeFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	f.files[name] = data

	return nil
}

// fakePackageLoader serves pre-parsed source instead of reading disk.
type fakePackageLoader struct {
	files []*dst.File
}

func (l *fakePackageLoader) Load(string) ([]*dst.File, *token.FileSet, error) {
	return l.files, nil, nil
}

// loaderFor parses each source string as one file of the loaded package.
func loaderFor(t *testing.T, sources ...string) *fakePackageLoader {
	t.Helper()

	loader := &fakePackageLoader{}

	for _, src := range sources {
		file, err := load.Source(src)
		if err != nil {
			t.Fatalf("failed to parse package source: %v", err)
		}

		loader.files = append(loader.files, file)
	}

	return loader
}

// envWith returns an env lookup serving only the given keys.
func envWith(pairs map[string]string) func(string) string {
	return func(key string) string { return pairs[key] }
}

func TestRun_GeneratesMockFile(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	loader := loaderFor(t, `package widget

type CliGreeter interface {
	Greet(name string) string
}
`)
	out := &bytes.Buffer{}

	err := run.Run(
		[]string{"mockgen", "CliGreeter"},
		envWith(map[string]string{"GOPACKAGE": "widget"}),
		fileSys, loader, out,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, ok := fileSys.files["generated_CliGreeterMock.go"]
	if !ok {
		t.Fatalf("expected generated_CliGreeterMock.go, wrote %v", keys(fileSys.files))
	}

	for _, want := range []string{
		"package widget",
		"type CliGreeterMock struct",
		"func NewCliGreeterMock(s *scenario.Scenario) *CliGreeterMock",
		"var _ CliGreeter = (*CliGreeterMock)(nil)",
		"func (m *CliGreeterMock) Greet(name string) string",
	} {
		if !strings.Contains(string(code), want) {
			t.Errorf("generated file missing %q\n\n%s", want, code)
		}
	}

	if !strings.Contains(out.String(), "written successfully") {
		t.Errorf("expected a success message, got %q", out.String())
	}
}

func TestRun_NameOverride(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	loader := loaderFor(t, `package widget

type CliNamed interface {
	Do()
}
`)

	err := run.Run(
		[]string{"mockgen", "CliNamed", "--name", "RenamedMock"},
		envWith(nil), fileSys, loader, &bytes.Buffer{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := fileSys.files["generated_RenamedMock.go"]; !ok {
		t.Errorf("expected generated_RenamedMock.go, wrote %v", keys(fileSys.files))
	}
}

func TestRun_AttachesStatics(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	loader := loaderFor(t, `package widget

type CliFactory interface {
	Use()
}

func OpenCliFactory(path string) CliFactory { return nil }
`)

	err := run.Run(
		[]string{"mockgen", "CliFactory", "--static", "OpenCliFactory"},
		envWith(map[string]string{"GOPACKAGE": "widget"}),
		fileSys, loader, &bytes.Buffer{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code := string(fileSys.files["generated_CliFactoryMock.go"])

	for _, want := range []string{
		"type CliFactoryMockStatic struct",
		"func CliFactoryMockOpenCliFactory(path string) *CliFactoryMock",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated file missing %q\n\n%s", want, code)
		}
	}
}

func TestRun_Extern(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	loader := loaderFor(t, `package widget

func CliSend(addr string) error { return nil }

func CliRecv() (string, error) { return "", nil }
`)

	err := run.Run(
		[]string{"mockgen", "CliSend, CliRecv", "--extern", "--name", "CliNetMock"},
		envWith(map[string]string{"GOPACKAGE": "widget"}),
		fileSys, loader, &bytes.Buffer{},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code := string(fileSys.files["generated_CliNetMock.go"])

	for _, want := range []string{
		"type CliNetMock struct",
		"func CliSend(addr string) error",
		"func CliRecv() (string, error)",
		"scenario.LookupStatic(",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated file missing %q\n\n%s", want, code)
		}
	}
}

func TestRun_ExternRequiresName(t *testing.T) {
	t.Parallel()

	loader := loaderFor(t, `package widget

func CliLone() {}
`)

	err := run.Run(
		[]string{"mockgen", "CliLone", "--extern"},
		envWith(nil), newFakeFileSystem(), loader, &bytes.Buffer{},
	)
	if !errors.Is(err, resolve.ErrMissingConfiguration) {
		t.Errorf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestRun_UnknownInterface(t *testing.T) {
	t.Parallel()

	loader := loaderFor(t, `package widget

type CliPresent interface{ Do() }
`)

	err := run.Run(
		[]string{"mockgen", "CliAbsent"},
		envWith(nil), newFakeFileSystem(), loader, &bytes.Buffer{},
	)
	if err == nil || !strings.Contains(err.Error(), "CliAbsent") {
		t.Errorf("expected an error naming the missing interface, got %v", err)
	}
}

func TestRun_MalformedRef(t *testing.T) {
	t.Parallel()

	loader := loaderFor(t, `package widget

type CliRefTarget interface{ Do() }
`)

	err := run.Run(
		[]string{"mockgen", "CliRefTarget", "--ref", "NoEquals"},
		envWith(nil), newFakeFileSystem(), loader, &bytes.Buffer{},
	)
	if !errors.Is(err, resolve.ErrMissingConfiguration) {
		t.Errorf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestRun_DebugPrintsDescriptors(t *testing.T) {
	t.Parallel()

	loader := loaderFor(t, `package widget

type CliDebugged interface{ Do() }
`)
	out := &bytes.Buffer{}

	err := run.Run(
		[]string{"mockgen", "CliDebugged"},
		envWith(map[string]string{"MOCKGEN_DEBUG": "1"}),
		newFakeFileSystem(), loader, out,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "CliDebuggedMock implements 1 interface(s):") {
		t.Errorf("expected a descriptor dump, got %q", out.String())
	}
}

func keys(m map[string][]byte) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	return names
}
