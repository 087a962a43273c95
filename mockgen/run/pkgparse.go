package run

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/dave/dst"

	registry "github.com/scenariotest/scenario/mockgen/run/1_registry"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
)

// unexported variables.
var (
	errInterfaceNotFound = errors.New("interface not found")
	errFunctionNotFound  = errors.New("function not found")
)

// declarationFromFile builds a registry declaration from one parsed source
// file: the named interface (or the first one, for an empty name) plus
// every package-level function in the file as receiver-less members.
func declarationFromFile(file *dst.File, targetName, modPath string) (registry.Declaration, error) {
	spec, srcFile, err := findInterface([]*dst.File{file}, targetName)
	if err != nil {
		return registry.Declaration{}, err
	}

	var statics []*dst.FuncDecl

	for _, decl := range file.Decls {
		if funcDecl, ok := decl.(*dst.FuncDecl); ok && funcDecl.Recv == nil {
			statics = append(statics, funcDecl)
		}
	}

	iface, _ := spec.Type.(*dst.InterfaceType)

	return registry.Declaration{
		Name:          spec.Name.Name,
		ModPath:       modPath,
		TypeParams:    spec.TypeParams,
		Iface:         iface,
		Statics:       statics,
		SourceImports: srcFile.Imports,
	}, nil
}

// declarationFromPackage builds a registry declaration from a loaded
// package: the named interface plus the package-level functions named in
// staticNames.
func declarationFromPackage(
	files []*dst.File, targetName, modPath string, staticNames []string,
) (registry.Declaration, error) {
	spec, srcFile, err := findInterface(files, targetName)
	if err != nil {
		return registry.Declaration{}, err
	}

	statics, err := findFunctions(files, staticNames)
	if err != nil {
		return registry.Declaration{}, err
	}

	iface, _ := spec.Type.(*dst.InterfaceType)

	return registry.Declaration{
		Name:          spec.Name.Name,
		ModPath:       modPath,
		TypeParams:    spec.TypeParams,
		Iface:         iface,
		Statics:       statics,
		SourceImports: srcFile.Imports,
	}, nil
}

// findInterface locates an interface type declaration by name across
// files. An empty name matches the first interface found.
func findInterface(files []*dst.File, name string) (*dst.TypeSpec, *dst.File, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok {
					continue
				}

				if _, isIface := typeSpec.Type.(*dst.InterfaceType); !isIface {
					continue
				}

				if name == "" || typeSpec.Name.Name == name {
					return typeSpec, file, nil
				}
			}
		}
	}

	if name == "" {
		return nil, nil, fmt.Errorf("%w: no interface declaration in source", errInterfaceNotFound)
	}

	return nil, nil, fmt.Errorf("%w: %s", errInterfaceNotFound, name)
}

// findFunctions locates package-level function declarations by name.
func findFunctions(files []*dst.File, names []string) ([]*dst.FuncDecl, error) {
	found := make([]*dst.FuncDecl, 0, len(names))

	for _, name := range names {
		decl := findFunction(files, name)
		if decl == nil {
			return nil, fmt.Errorf("%w: %s", errFunctionNotFound, name)
		}

		found = append(found, decl)
	}

	return found, nil
}

func findFunction(files []*dst.File, name string) *dst.FuncDecl {
	for _, file := range files {
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*dst.FuncDecl)
			if !ok || funcDecl.Recv != nil {
				continue
			}

			if funcDecl.Name.Name == name {
				return funcDecl
			}
		}
	}

	return nil
}

// functionBlock validates a free-function source block: nothing but
// package-level function declarations (imports aside) may appear.
func functionBlock(file *dst.File) ([]*dst.FuncDecl, error) {
	var statics []*dst.FuncDecl

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *dst.FuncDecl:
			if d.Recv != nil {
				return nil, fmt.Errorf("%w: %s has a receiver; free-function blocks hold functions only",
					resolve.ErrUnsupportedShape, d.Name.Name)
			}

			statics = append(statics, d)
		case *dst.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}

			return nil, fmt.Errorf("%w: free-function blocks hold functions only",
				resolve.ErrUnsupportedShape)
		default:
			return nil, fmt.Errorf("%w: free-function blocks hold functions only",
				resolve.ErrUnsupportedShape)
		}
	}

	if len(statics) == 0 {
		return nil, fmt.Errorf("%w: free-function block declares no functions",
			resolve.ErrUnsupportedShape)
	}

	return statics, nil
}
