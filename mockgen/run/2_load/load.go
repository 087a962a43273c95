// Package load parses Go source into dst syntax trees, either a whole
// package by import path or a standalone declaration snippet.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// unexported variables.
var errNoGoFiles = errors.New("no parsable .go files")

// PackageDST parses every .go file of the package at importPath. Test
// files are included only for "." since other packages' test files may not
// parse standalone. Fast syntax-only parsing, no type checking.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := packageDir(importPath)
	if err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	includeTests := importPath == "."

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	var files []*dst.File

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		file, err := dec.ParseFile(filepath.Join(dir, name), nil, 0)
		if err != nil {
			// Skip files that do not parse standalone.
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", errNoGoFiles, dir)
	}

	return files, fset, nil
}

// Source parses a declaration snippet into a single dst file. A snippet
// without a package clause is wrapped in a placeholder one, so callers can
// pass bare interface and function declarations.
func Source(src string) (*dst.File, error) {
	trimmed := strings.TrimSpace(src)
	if !strings.HasPrefix(trimmed, "package ") {
		src = "package input\n\n" + src
	}

	dec := decorator.NewDecorator(token.NewFileSet())

	file, err := dec.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration source: %w", err)
	}

	return file, nil
}

// packageDir resolves an import path to the directory holding its sources.
func packageDir(importPath string) (string, error) {
	if importPath == "." {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}

		return dir, nil
	}

	srcDir, _ := os.Getwd()

	pkg, err := build.Import(importPath, srcDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}
