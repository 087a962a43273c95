package generate

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/dst"
	gofumpt "mvdan.cc/gofumpt/format"

	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
	rewrite "github.com/scenariotest/scenario/mockgen/run/4_rewrite"
)

// enginePath is the import path of the runtime verification engine every
// generated file depends on.
const enginePath = "github.com/scenariotest/scenario"

// Plan is one generation request: the resolved descriptors plus everything
// the emitted file needs around them.
type Plan struct {
	// PkgName is the generated file's package clause.
	PkgName string
	// MockName is the emitted mock type's identifier.
	MockName string
	// Descriptors are the interfaces to implement, bases first.
	Descriptors []resolve.Descriptor
	// EchoSource is the original declaration text to re-emit before the
	// generated code; empty suppresses the echo.
	EchoSource string
	// SourceImports are the declaration site's imports, carried over when
	// the generated code references them.
	SourceImports []*dst.ImportSpec
	// AssertImplements emits compile-time satisfaction checks for locally
	// declared interfaces. Requires the declarations to be visible in the
	// generated file's package.
	AssertImplements bool
	// Extern marks free-function mode: no instance mock, every member
	// dispatches through the static table.
	Extern bool
}

// boundMethod pairs a method with its owning descriptor and precomputed
// emission shape.
type boundMethod struct {
	desc   resolve.Descriptor
	method resolve.Method
	shape  methodShape
}

// Code emits the complete generated file for a plan.
func Code(plan Plan) (string, error) {
	if plan.MockName == "" {
		return "", fmt.Errorf("%w: a mock name is required", resolve.ErrMissingConfiguration)
	}

	if len(plan.Descriptors) == 0 {
		return "", fmt.Errorf("%w: generation requested with no descriptors",
			resolve.ErrInternalInconsistency)
	}

	if plan.PkgName == "" {
		plan.PkgName = "mocks"
	}

	if plan.Extern {
		return externCode(plan)
	}

	assoc := assocUnion(plan.Descriptors)
	if len(assoc) > 0 && anyStatics(plan.Descriptors) {
		return "", fmt.Errorf(
			"%w: %s mixes associated types with receiver-less members",
			resolve.ErrUnsupportedShape, plan.MockName)
	}

	paramsDecl := typeParamsDecl(assoc)
	paramsUse := typeParamsUse(assoc)
	methods := bindMethods(plan)

	body := &codeWriter{}
	tmpl := NewTemplateRegistry()

	writeIDConsts(body, plan)

	tmpl.WriteMockStruct(&body.buf, map[string]any{
		"MockName":       plan.MockName,
		"TypeParamsDecl": paramsDecl,
		"Markers":        assoc,
		"QualifiedNames": qualifiedNames(plan.Descriptors),
	})
	tmpl.WriteConstructor(&body.buf, map[string]any{
		"MockName":       plan.MockName,
		"TypeParamsDecl": paramsDecl,
		"TypeParamsUse":  paramsUse,
	})
	tmpl.WriteHooks(&body.buf, map[string]any{
		"MockName":       plan.MockName,
		"TypeParamsUse":  paramsUse,
		"QualifiedNames": qualifiedNames(plan.Descriptors),
	})

	writeAssertions(body, plan, assoc)

	for _, bound := range methods {
		if bound.shape.ReturnsStruct != "" {
			writeReturnsStruct(body, paramsDecl, bound.shape)
		}

		if bound.method.Static {
			continue
		}

		writeForwardingMethod(body, plan.MockName, paramsUse, bound.shape,
			bound.desc.QualifiedName())
		writeBuilderMethod(body, plan.MockName, paramsUse, bound.shape)
	}

	writeStatics(body, tmpl, plan, methods)
	writeConvenienceCtor(body, tmpl, plan, assoc)

	return assemble(plan, body.String())
}

// bindMethods flattens the descriptors' members into emission order,
// rewriting self-references and dropping later duplicates by name.
func bindMethods(plan Plan) []boundMethod {
	seen := map[string]bool{}

	var methods []boundMethod

	for _, desc := range plan.Descriptors {
		for _, method := range desc.Methods {
			if seen[method.Name] {
				continue
			}

			seen[method.Name] = true

			sig := rewriteSelf(plan, desc, method)
			idConst := idConstName(plan.MockName, desc.Name)

			methods = append(methods, boundMethod{
				desc:   desc,
				method: method,
				shape:  shapeMethod(plan.MockName, method, sig, idConst),
			})
		}
	}

	return methods
}

// rewriteSelf resolves a method signature's references to its interface's
// own name. Receiver-less methods resolve to the concrete mock type, since
// their emitted forms live outside any interface implementation; methods
// of an interface from another package resolve to the qualified name.
func rewriteSelf(plan Plan, desc resolve.Descriptor, method resolve.Method) *dst.FuncType {
	if method.Static {
		return rewrite.Signature(method.Func, desc.Name, func(dst.Expr) dst.Expr {
			return &dst.StarExpr{X: dst.NewIdent(plan.MockName)}
		})
	}

	if desc.ModPath == "" {
		return method.Func
	}

	qualifier := lastSegment(desc.ModPath)

	return rewrite.Signature(method.Func, desc.Name, rewrite.Qualify(desc.Name, qualifier))
}

// writeIDConsts emits the interface id constants the generated code and
// the engine share.
func writeIDConsts(w *codeWriter, plan Plan) {
	w.pf("\n// Interface ids allocated for %s.\nconst (\n", plan.MockName)

	for _, desc := range plan.Descriptors {
		w.pf("\t%s = %d\n", idConstName(plan.MockName, desc.Name), desc.ID)
	}

	w.ps(")\n")
}

// writeAssertions emits compile-time interface satisfaction checks for
// the locally declared interfaces.
func writeAssertions(w *codeWriter, plan Plan, assoc []string) {
	if !plan.AssertImplements || len(assoc) > 0 {
		return
	}

	for _, desc := range plan.Descriptors {
		if desc.ModPath != "" {
			continue
		}

		w.pf("\nvar _ %s = (*%s)(nil)\n", desc.Name, plan.MockName)
	}
}

// writeStatics emits the static-mock twin plus its builders and the free
// forwarding functions, when any member is receiver-less.
func writeStatics(w *codeWriter, tmpl *TemplateRegistry, plan Plan, methods []boundMethod) {
	if !anyStatics(plan.Descriptors) {
		return
	}

	staticName := plan.MockName + "Static"

	tmpl.WriteStaticMock(&w.buf, map[string]any{
		"StaticName":     staticName,
		"QualifiedNames": qualifiedNames(plan.Descriptors),
		"IDList":         idList(plan.MockName, plan.Descriptors),
	})

	for _, bound := range methods {
		if !bound.method.Static {
			continue
		}

		writeBuilderMethod(w, staticName, "", bound.shape)
		writeStaticForwarder(w, plan.MockName+bound.shape.Name, bound.shape)
	}
}

// writeConvenienceCtor emits the interface-to-mock shorthand for the
// simple case: one interface, no associated types, no statics.
func writeConvenienceCtor(w *codeWriter, tmpl *TemplateRegistry, plan Plan, assoc []string) {
	if len(plan.Descriptors) != 1 || len(assoc) > 0 || anyStatics(plan.Descriptors) {
		return
	}

	desc := plan.Descriptors[0]
	if desc.ModPath != "" {
		return
	}

	tmpl.WriteConvenience(&w.buf, map[string]any{
		"IfaceName": desc.Name,
		"MockName":  plan.MockName,
	})
}

// assemble joins header, imports, echo, and body, then formats the result.
func assemble(plan Plan, body string) (string, error) {
	buf := &bytes.Buffer{}
	NewTemplateRegistry().WriteHeader(buf, map[string]any{"PkgName": plan.PkgName})

	echo := strings.TrimSpace(plan.EchoSource)
	referenced := echo + body

	buf.WriteString("\nimport (\n")

	for _, spec := range usedImports(plan, referenced) {
		buf.WriteString("\t" + spec + "\n")
	}

	buf.WriteString(")\n")

	if echo != "" {
		buf.WriteString("\n" + echo + "\n")
	}

	buf.WriteString(body)

	formatted, err := gofumpt.Source(buf.Bytes(), gofumpt.Options{})
	if err != nil {
		return buf.String(), fmt.Errorf("generated code for %s does not format: %w",
			plan.MockName, err)
	}

	return string(formatted), nil
}

// usedImports returns the rendered import specs the generated file needs:
// the engine, the declaration site's imports that the emitted text still
// references, and the packages of foreign descriptors.
func usedImports(plan Plan, referenced string) []string {
	specs := []string{fmt.Sprintf("scenario %q", enginePath)}
	have := map[string]bool{enginePath: true}

	add := func(name, path string, spec string) {
		if have[path] || !referencesQualifier(referenced, name) {
			return
		}

		have[path] = true
		specs = append(specs, spec)
	}

	for _, imp := range plan.SourceImports {
		path := strings.Trim(imp.Path.Value, `"`)

		name := lastSegment(path)
		spec := imp.Path.Value

		if imp.Name != nil {
			name = imp.Name.Name
			spec = name + " " + imp.Path.Value
		}

		add(name, path, spec)
	}

	for _, desc := range plan.Descriptors {
		if desc.ModPath == "" {
			continue
		}

		add(lastSegment(desc.ModPath), desc.ModPath, fmt.Sprintf("%q", desc.ModPath))
	}

	return specs
}

// referencesQualifier reports whether text uses name as a package
// qualifier. Occurrences inside a longer path, such as a module path in a
// string literal, do not count.
func referencesQualifier(text, name string) bool {
	target := name + "."

	for from := 0; ; {
		idx := strings.Index(text[from:], target)
		if idx < 0 {
			return false
		}

		idx += from
		from = idx + len(target)

		if idx == 0 {
			return true
		}

		switch prev := text[idx-1]; {
		case prev == '/' || prev == '.' || prev == '_':
		case prev >= 'a' && prev <= 'z', prev >= 'A' && prev <= 'Z', prev >= '0' && prev <= '9':
		default:
			return true
		}
	}
}

func anyStatics(descriptors []resolve.Descriptor) bool {
	for _, desc := range descriptors {
		if desc.HasStatics() {
			return true
		}
	}

	return false
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}
