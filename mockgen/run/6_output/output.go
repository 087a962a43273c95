// Package output places generated mock source on disk next to the
// declaration that asked for it.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toejough/go-reorder"
)

// Writer is the file-writing dependency, split out for testing.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// WriteGeneratedCode writes code to generated_<mockName>.go, switching to
// a _test.go name when generation was triggered from a test file or test
// package so the mock stays out of production builds.
func WriteGeneratedCode(
	code string, mockName string, pkgName string,
	getEnv func(string) string, fileWriter Writer, out io.Writer,
) error {
	const generatedFilePermissions = 0o600

	filename := "generated_" + mockName

	goFile := getEnv("GOFILE")

	isTestFile := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTestFile && !strings.HasSuffix(mockName, "_test") {
		filename = "generated_" + strings.TrimSuffix(mockName, ".go") + "_test.go"
	} else if !strings.HasSuffix(filename, ".go") {
		filename += ".go"
	}

	// Keep declaration order consistent across regenerations.
	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileWriter.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}
