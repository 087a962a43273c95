package run

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	registry "github.com/scenariotest/scenario/mockgen/run/1_registry"
	load "github.com/scenariotest/scenario/mockgen/run/2_load"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
	generate "github.com/scenariotest/scenario/mockgen/run/5_generate"
)

// Options configures a Mocked call.
type Options struct {
	// MockName overrides the generated mock identifier; defaults to
	// <Interface>Mock.
	MockName string
	// Refs maps a base interface's unqualified name to the module path it
	// should be qualified under.
	Refs map[string]string
	// ModulePath registers the interface under a module path for later
	// lookups by other generation calls.
	ModulePath string
	// SuppressSource drops the echo of the original declaration from the
	// output.
	SuppressSource bool
	// PkgName sets the generated file's package clause; defaults to the
	// source's package clause when it has one.
	PkgName string
}

// InterfaceSource is one item of an explicit-list generation call: a
// module path (or "self" for the target's own package) and the interface
// declaration source.
type InterfaceSource struct {
	ModPath string
	Source  string
}

// Mocked generates a mock from one interface declaration given as source
// text, plus any package-level function declarations in the same text,
// which become the interface's receiver-less members. The interface is
// registered so later calls can extend it. The output echoes the original
// declarations followed by the generated code, unless suppressed.
func Mocked(source string, opts Options) (string, error) {
	file, err := load.Source(source)
	if err != nil {
		return "", err
	}

	decl, err := declarationFromFile(file, "", opts.ModulePath)
	if err != nil {
		return "", err
	}

	registry.Register(decl)

	descriptors, err := resolve.Primary(decl, opts.Refs)
	if err != nil {
		return "", err
	}

	mockName := opts.MockName
	if mockName == "" {
		mockName = decl.Name + "Mock"
	}

	echo := ""
	if !opts.SuppressSource {
		echo, err = renderEcho(file)
		if err != nil {
			return "", err
		}
	}

	return generate.Code(generate.Plan{
		PkgName:          pkgNameFor(opts, file),
		MockName:         mockName,
		Descriptors:      descriptors,
		EchoSource:       echo,
		SourceImports:    file.Imports,
		AssertImplements: echo != "",
	})
}

// MockForInterfaces generates one mock implementing an explicit list of
// interfaces. Each item's embedded bases must name earlier list items.
// Original declarations are never echoed.
func MockForInterfaces(mockName string, items []InterfaceSource, opts Options) (string, error) {
	if mockName == "" {
		return "", fmt.Errorf("%w: explicit-list generation requires a mock name",
			resolve.ErrMissingConfiguration)
	}

	decls := make([]registry.Declaration, 0, len(items))

	var imports []*dst.ImportSpec

	for _, item := range items {
		file, err := load.Source(item.Source)
		if err != nil {
			return "", err
		}

		decl, err := declarationFromFile(file, "", item.ModPath)
		if err != nil {
			return "", err
		}

		decls = append(decls, decl)
		imports = append(imports, file.Imports...)
	}

	descriptors, err := resolve.List(decls)
	if err != nil {
		return "", err
	}

	return generate.Code(generate.Plan{
		PkgName:       opts.PkgName,
		MockName:      mockName,
		Descriptors:   descriptors,
		SourceImports: imports,
	})
}

// MockedExtern generates free-function mode output from a block of
// function declarations: a self-registering mock plus one same-named
// forwarder per function, all under a single interface id.
func MockedExtern(source string, opts Options) (string, error) {
	if opts.MockName == "" {
		return "", fmt.Errorf("%w: free-function generation requires a mock name",
			resolve.ErrMissingConfiguration)
	}

	file, err := load.Source(source)
	if err != nil {
		return "", err
	}

	statics, err := functionBlock(file)
	if err != nil {
		return "", err
	}

	decl := registry.Declaration{
		Name:          opts.MockName,
		ModPath:       opts.ModulePath,
		Statics:       statics,
		SourceImports: file.Imports,
	}

	descriptors, err := resolve.List([]registry.Declaration{decl})
	if err != nil {
		return "", err
	}

	return generate.Code(generate.Plan{
		PkgName:       pkgNameFor(opts, file),
		MockName:      opts.MockName,
		Descriptors:   descriptors,
		SourceImports: file.Imports,
		Extern:        true,
	})
}

// pkgNameFor picks the generated file's package clause.
func pkgNameFor(opts Options, file *dst.File) string {
	if opts.PkgName != "" {
		return opts.PkgName
	}

	if file.Name != nil && file.Name.Name != "input" {
		return file.Name.Name
	}

	return ""
}

// renderEcho re-renders the source declarations for inclusion ahead of the
// generated code, dropping the package clause, import declarations, and
// any bodiless function declarations, none of which can be repeated in the
// generated file.
func renderEcho(file *dst.File) (string, error) {
	clone := dst.Clone(file).(*dst.File)

	kept := clone.Decls[:0]

	for _, decl := range clone.Decls {
		switch d := decl.(type) {
		case *dst.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}
		case *dst.FuncDecl:
			if d.Body == nil {
				continue
			}
		}

		kept = append(kept, decl)
	}

	clone.Decls = kept
	clone.Imports = nil

	buf := &bytes.Buffer{}

	err := decorator.Fprint(buf, clone)
	if err != nil {
		return "", fmt.Errorf("failed to render source declarations: %w", err)
	}

	// Drop the package clause line.
	text := buf.String()
	if idx := strings.Index(text, "\n"); idx >= 0 && strings.HasPrefix(text, "package ") {
		text = text[idx+1:]
	}

	return strings.TrimSpace(text), nil
}
