//nolint:paralleltest // Tests use t.Chdir which is incompatible with t.Parallel
package load_test

import (
	"os"
	"path/filepath"
	"testing"

	load "github.com/scenariotest/scenario/mockgen/run/2_load"
)

func TestSource_BareDeclaration(t *testing.T) {
	file, err := load.Source("type Greeter interface { Greet() }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Name.Name != "input" {
		t.Errorf("expected the placeholder package clause, got %q", file.Name.Name)
	}

	if len(file.Decls) != 1 {
		t.Errorf("expected one declaration, got %d", len(file.Decls))
	}
}

func TestSource_KeepsPackageClause(t *testing.T) {
	file, err := load.Source("package widget\n\ntype Greeter interface { Greet() }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if file.Name.Name != "widget" {
		t.Errorf("expected the source package clause, got %q", file.Name.Name)
	}
}

func TestSource_ParseError(t *testing.T) {
	_, err := load.Source("type Broken interface {")
	if err == nil {
		t.Error("expected a parse error")
	}
}

func TestPackageDST_LoadsCurrentDirectoryWithTests(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "pkg.go"), "package pkg\n\nfunc F() {}\n")
	writeFile(t, filepath.Join(tmpDir, "pkg_test.go"),
		"package pkg\n\nimport \"testing\"\n\nfunc TestF(t *testing.T) {}\n")

	t.Chdir(tmpDir)

	files, _, err := load.PackageDST(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 2 {
		t.Errorf("expected both files for the local package, got %d", len(files))
	}
}

func TestPackageDST_ExcludesTestFilesForOtherPackages(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "extpkg")

	err := os.Mkdir(subDir, 0o755)
	if err != nil {
		t.Fatalf("failed to create extpkg dir: %v", err)
	}

	writeFile(t, filepath.Join(subDir, "ext.go"), "package extpkg\n\nfunc ExtFunc() {}\n")
	writeFile(t, filepath.Join(subDir, "ext_test.go"),
		"package extpkg\n\nimport \"testing\"\n\nfunc TestExtFunc(t *testing.T) {}\n")

	t.Chdir(tmpDir)

	files, _, err := load.PackageDST("./extpkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected only the non-test file, got %d", len(files))
	}
}

func TestPackageDST_SkipsUnparsableFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "good.go"), "package pkg\n\nfunc F() {}\n")
	writeFile(t, filepath.Join(tmpDir, "bad.go"), "package pkg\n\nfunc Broken( {\n")

	t.Chdir(tmpDir)

	files, _, err := load.PackageDST(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected only the parsable file, got %d", len(files))
	}
}

func TestPackageDST_NoGoFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "not go\n")

	t.Chdir(tmpDir)

	_, _, err := load.PackageDST(".")
	if err == nil {
		t.Error("expected an error for a directory without go files")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
