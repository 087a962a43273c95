// Package run implements the main logic of the mockgen tool in a testable
// way: argument parsing, package loading, registration, resolution, and
// code generation, with the filesystem and package loader injected.
package run

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"

	registry "github.com/scenariotest/scenario/mockgen/run/1_registry"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
	generate "github.com/scenariotest/scenario/mockgen/run/5_generate"
	output "github.com/scenariotest/scenario/mockgen/run/6_output"
)

// Interfaces - Public

// FileSystem is the file-writing dependency, split out for testing.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads a package's parsed source by import path.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// Structs - Private

// cliArgs defines the command-line arguments of the generator.
type cliArgs struct {
	Target     string   `arg:"positional,required" help:"interface to mock, or comma-separated free functions with --extern"`
	Name       string   `arg:"--name"              help:"name for the generated mock (defaults to <Interface>Mock)"`
	Refs       []string `arg:"--ref,separate"      help:"BASE=MODULEPATH qualification override for a base interface"`
	ModulePath string   `arg:"--module-path"       help:"module path to register the interface under"`
	Statics    []string `arg:"--static,separate"   help:"package-level function attached as a receiver-less member"`
	Extern     bool     `arg:"--extern"            help:"treat the target as a comma-separated list of free functions"`
}

// Functions - Public

// Run executes the mockgen tool logic. It loads the calling package, finds
// the target declaration, resolves it with every interface it extends, and
// writes the generated mock next to the go:generate comment that invoked
// the tool. Setting MOCKGEN_DEBUG prints the resolved interfaces.
func Run(
	args []string, getEnv func(string) string,
	fileSys FileSystem, pkgLoader PackageLoader, out io.Writer,
) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	pkgName := getEnv("GOPACKAGE")

	files, _, err := pkgLoader.Load(".")
	if err != nil {
		return err
	}

	mockName, descriptors, sourceImports, err := resolveTarget(parsed, files)
	if err != nil {
		return err
	}

	if getEnv("MOCKGEN_DEBUG") != "" {
		printDescriptors(out, mockName, descriptors)
	}

	code, err := generate.Code(generate.Plan{
		PkgName:          pkgName,
		MockName:         mockName,
		Descriptors:      descriptors,
		SourceImports:    sourceImports,
		AssertImplements: !parsed.Extern,
		Extern:           parsed.Extern,
	})
	if err != nil {
		return err
	}

	return output.WriteGeneratedCode(code, mockName, pkgName, getEnv, fileSys, out)
}

// Functions - Private

// resolveTarget turns the parsed arguments plus the loaded package into
// the descriptor list driving generation.
func resolveTarget(
	parsed cliArgs, files []*dst.File,
) (string, []resolve.Descriptor, []*dst.ImportSpec, error) {
	if parsed.Extern {
		return resolveExternTarget(parsed, files)
	}

	refs, err := parseRefs(parsed.Refs)
	if err != nil {
		return "", nil, nil, err
	}

	decl, err := declarationFromPackage(files, parsed.Target, parsed.ModulePath, parsed.Statics)
	if err != nil {
		return "", nil, nil, err
	}

	registry.Register(decl)

	descriptors, err := resolve.Primary(decl, refs)
	if err != nil {
		return "", nil, nil, err
	}

	mockName := parsed.Name
	if mockName == "" {
		mockName = decl.Name + "Mock"
	}

	return mockName, descriptors, decl.SourceImports, nil
}

// resolveExternTarget handles free-function mode: the target is a list of
// package-level functions, mocked as one block under one interface id.
func resolveExternTarget(
	parsed cliArgs, files []*dst.File,
) (string, []resolve.Descriptor, []*dst.ImportSpec, error) {
	if parsed.Name == "" {
		return "", nil, nil, fmt.Errorf("%w: --extern requires --name",
			resolve.ErrMissingConfiguration)
	}

	names := strings.Split(parsed.Target, ",")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}

	statics, err := findFunctions(files, names)
	if err != nil {
		return "", nil, nil, err
	}

	decl := registry.Declaration{
		Name:    parsed.Name,
		ModPath: parsed.ModulePath,
		Statics: statics,
	}

	descriptors, err := resolve.List([]registry.Declaration{decl})
	if err != nil {
		return "", nil, nil, err
	}

	return parsed.Name, descriptors, allImports(files), nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// parseRefs parses repeated BASE=MODULEPATH flags into a map.
func parseRefs(refs []string) (map[string]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	parsed := make(map[string]string, len(refs))

	for _, ref := range refs {
		name, path, ok := strings.Cut(ref, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("%w: --ref must look like Base=module/path, got %q",
				resolve.ErrMissingConfiguration, ref)
		}

		parsed[name] = path
	}

	return parsed, nil
}

func printDescriptors(out io.Writer, mockName string, descriptors []resolve.Descriptor) {
	_, _ = fmt.Fprintf(out, "%s implements %d interface(s):\n", mockName, len(descriptors))

	for _, desc := range descriptors {
		_, _ = fmt.Fprintf(out, "  %s (id %d, %d methods)\n",
			desc.QualifiedName(), desc.ID, len(desc.Methods))
	}
}

func allImports(files []*dst.File) []*dst.ImportSpec {
	var imports []*dst.ImportSpec

	for _, file := range files {
		imports = append(imports, file.Imports...)
	}

	return imports
}
