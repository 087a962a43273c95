// mockgen generates scenario-driven test mocks for Go interfaces.
// Install it with `go install github.com/scenariotest/scenario/mockgen@latest`
// and add a `//go:generate mockgen <Interface>` comment to the package
// declaring the interface. By default the mock is named <Interface>Mock and
// written to generated_<Interface>Mock.go in the same package; pass
// `--name` to override. Interfaces extending other mockable interfaces are
// resolved recursively, and `--static`/`--extern` cover receiver-less
// members and free-function blocks.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"

	"github.com/scenariotest/scenario/mockgen/run"
	load "github.com/scenariotest/scenario/mockgen/run/2_load"
)

// main is the entry point of the mockgen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements run.PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := load.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
