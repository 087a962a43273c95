// Package generate emits the mock source for a resolved descriptor list:
// the mock struct and its constructors, the forwarding methods, the
// expectation builders, and the static-mock machinery for receiver-less
// members.
package generate

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/dave/dst"

	astutil "github.com/scenariotest/scenario/mockgen/run/0_util"
	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
)

// codeWriter accumulates generated source.
type codeWriter struct {
	buf bytes.Buffer
}

// pf writes formatted source.
func (w *codeWriter) pf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// ps writes literal source.
func (w *codeWriter) ps(s string) {
	w.buf.WriteString(s)
}

func (w *codeWriter) String() string {
	return w.buf.String()
}

// methodShape is everything the method emitters need, precomputed as
// source strings from a method's rewritten signature.
type methodShape struct {
	Name    string
	IDConst string
	// ParamDecls is the declaration list, e.g. "name string, ns ...int".
	ParamDecls string
	// ArgNames are the parameter names, sanitized against emitted locals.
	ArgNames []string
	// ArgTypes are the parameter types as engine type arguments, with
	// variadics flattened to slices.
	ArgTypes    []string
	ResultTypes []string
	// ReturnsStruct names the generated multi-result struct; empty for
	// methods with zero or one result.
	ReturnsStruct string
}

// shapeMethod computes a method's emission shape. sig must already have
// self-references rewritten.
func shapeMethod(mockName string, method resolve.Method, sig *dst.FuncType, idConst string) methodShape {
	names := astutil.FlattenedNames(sig.Params, "a")
	types := astutil.FlattenedTypes(sig.Params)

	decls := make([]string, len(names))
	argTypes := make([]string, len(names))

	for i := range names {
		names[i] = sanitizeArgName(names[i])
		decls[i] = names[i] + " " + types[i]
		argTypes[i] = strings.Replace(types[i], "...", "[]", 1)
	}

	results := astutil.FlattenedTypes(sig.Results)

	shape := methodShape{
		Name:        method.Name,
		IDConst:     idConst,
		ParamDecls:  strings.Join(decls, ", "),
		ArgNames:    names,
		ArgTypes:    argTypes,
		ResultTypes: results,
	}

	if len(results) > 1 {
		shape.ReturnsStruct = mockName + method.Name + "Returns"
	}

	return shape
}

// resultTypeArg is the engine result type argument: Unit for none, the
// result itself for one, the Returns struct for several.
func (sh methodShape) resultTypeArg() string {
	switch len(sh.ResultTypes) {
	case 0:
		return "scenario.Unit"
	case 1:
		return sh.ResultTypes[0]
	default:
		return sh.ReturnsStruct
	}
}

// returnList renders the method's result list, parenthesized as needed.
func (sh methodShape) returnList() string {
	switch len(sh.ResultTypes) {
	case 0:
		return ""
	case 1:
		return " " + sh.ResultTypes[0]
	default:
		return " (" + strings.Join(sh.ResultTypes, ", ") + ")"
	}
}

// engineTypeArgs renders the [args..., result] type argument list for the
// VerifyN and CallMatchN families.
func (sh methodShape) engineTypeArgs() string {
	args := make([]string, 0, len(sh.ArgTypes)+1)
	args = append(args, sh.ArgTypes...)
	args = append(args, sh.resultTypeArg())

	return "[" + strings.Join(args, ", ") + "]"
}

// idConstName derives the unexported constant name holding a descriptor's
// interface id.
func idConstName(mockName, descName string) string {
	return lowerFirst(mockName) + descName + "ID"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

// sanitizeArgName keeps parameter names clear of the identifiers the
// emitted bodies bind.
func sanitizeArgName(name string) string {
	switch name {
	case "m", "s", "r", "mockID", "scenario":
		return name + "Arg"
	default:
		return name
	}
}

// assocUnion collects the associated type names across descriptors, in
// order, keeping the first occurrence of each name.
func assocUnion(descriptors []resolve.Descriptor) []string {
	seen := map[string]bool{}

	var names []string

	for _, desc := range descriptors {
		for _, name := range desc.AssocTypes {
			if seen[name] {
				continue
			}

			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// typeParamsDecl renders "[T scenario.Debuggable, U scenario.Debuggable]"
// or "". Promoted type parameters carry the engine's display bound, which
// every Go value satisfies.
func typeParamsDecl(assoc []string) string {
	if len(assoc) == 0 {
		return ""
	}

	parts := make([]string, len(assoc))
	for i, name := range assoc {
		parts[i] = name + " scenario.Debuggable"
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// typeParamsUse renders "[T, U]" or "".
func typeParamsUse(assoc []string) string {
	if len(assoc) == 0 {
		return ""
	}

	return "[" + strings.Join(assoc, ", ") + "]"
}

// qualifiedNames joins the descriptors' qualified names with "+", the
// uniform display identity of a generated mock.
func qualifiedNames(descriptors []resolve.Descriptor) string {
	names := make([]string, len(descriptors))
	for i, desc := range descriptors {
		names[i] = desc.QualifiedName()
	}

	return strings.Join(names, "+")
}

// idList renders the comma-separated id constant names of all descriptors.
func idList(mockName string, descriptors []resolve.Descriptor) string {
	names := make([]string, len(descriptors))
	for i, desc := range descriptors {
		names[i] = idConstName(mockName, desc.Name)
	}

	return strings.Join(names, ", ")
}
