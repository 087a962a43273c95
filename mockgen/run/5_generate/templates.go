package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template sources for the fixed-shape parts of a generated file. The
// signature-dependent parts (methods, builders, forwarders) are emitted
// directly; see method.go.
const (
	headerTmplSrc = `// Code generated by mockgen. DO NOT EDIT.

package {{.PkgName}}
`

	mockStructTmplSrc = `
// {{.MockName}} is a scenario-driven test double for {{.QualifiedNames}}.
type {{.MockName}}{{.TypeParamsDecl}} struct {
{{- range .Markers}}
	_ [0]{{.}}
{{- end}}
	id       int
	scenario *scenario.Scenario
}
`

	constructorTmplSrc = `
// New{{.MockName}} creates a {{.MockName}} reporting through s.
func New{{.MockName}}{{.TypeParamsDecl}}(s *scenario.Scenario) *{{.MockName}}{{.TypeParamsUse}} {
	return &{{.MockName}}{{.TypeParamsUse}}{id: s.NextMockID("{{.MockName}}"), scenario: s}
}

// NewNamed{{.MockName}} creates a {{.MockName}} with a display name for
// scenario failure messages.
func NewNamed{{.MockName}}{{.TypeParamsDecl}}(s *scenario.Scenario, name string) *{{.MockName}}{{.TypeParamsUse}} {
	return &{{.MockName}}{{.TypeParamsUse}}{id: s.NextMockID(name), scenario: s}
}
`

	hooksTmplSrc = `
// MockedName returns the qualified names of the mocked interfaces, joined
// with "+".
func (m *{{.MockName}}{{.TypeParamsUse}}) MockedName() string { return "{{.QualifiedNames}}" }

// String returns the mock's display name within its scenario.
func (m *{{.MockName}}{{.TypeParamsUse}}) String() string { return m.scenario.MockName(m.id) }

// SetDisplayName renames the mock in scenario failure messages.
func (m *{{.MockName}}{{.TypeParamsUse}}) SetDisplayName(name string) {
	m.scenario.SetMockName(m.id, name)
}
`

	staticMockTmplSrc = `
// {{.StaticName}} intercepts the receiver-less members of {{.QualifiedNames}}.
// At most one may be live per interface id at a time.
type {{.StaticName}} struct {
	id       int
	scenario *scenario.Scenario
}

// New{{.StaticName}} creates the mock and claims its interface ids. It
// panics if another mock still holds any of them.
func New{{.StaticName}}(s *scenario.Scenario) *{{.StaticName}} {
	m := &{{.StaticName}}{id: s.NextMockID("{{.StaticName}}"), scenario: s}
	scenario.RegisterStatic([]int{ {{.IDList}} }, m.id, s)

	return m
}

// Close releases the mock's interface ids. Safe to call twice.
func (m *{{.StaticName}}) Close() { scenario.UnregisterStatic([]int{ {{.IDList}} }) }
`

	convenienceTmplSrc = `
// Mock{{.IfaceName}} creates a {{.MockName}} for use wherever a
// {{.IfaceName}} is needed.
func Mock{{.IfaceName}}(s *scenario.Scenario) *{{.MockName}} {
	return New{{.MockName}}(s)
}
`
)

// TemplateRegistry holds the parsed templates for fixed-shape emission.
// Create one with NewTemplateRegistry.
type TemplateRegistry struct {
	headerTmpl      *template.Template
	mockStructTmpl  *template.Template
	constructorTmpl *template.Template
	hooksTmpl       *template.Template
	staticMockTmpl  *template.Template
	convenienceTmpl *template.Template
}

// NewTemplateRegistry parses all templates. The sources are constants, so
// parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		headerTmpl:      template.Must(template.New("header").Parse(headerTmplSrc)),
		mockStructTmpl:  template.Must(template.New("mockStruct").Parse(mockStructTmplSrc)),
		constructorTmpl: template.Must(template.New("constructor").Parse(constructorTmplSrc)),
		hooksTmpl:       template.Must(template.New("hooks").Parse(hooksTmplSrc)),
		staticMockTmpl:  template.Must(template.New("staticMock").Parse(staticMockTmplSrc)),
		convenienceTmpl: template.Must(template.New("convenience").Parse(convenienceTmplSrc)),
	}
}

// WriteHeader writes the generated-file header and package clause.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteMockStruct writes the mock struct declaration.
func (r *TemplateRegistry) WriteMockStruct(buf *bytes.Buffer, data any) {
	execute(r.mockStructTmpl, buf, data)
}

// WriteConstructor writes the mock constructors.
func (r *TemplateRegistry) WriteConstructor(buf *bytes.Buffer, data any) {
	execute(r.constructorTmpl, buf, data)
}

// WriteHooks writes the naming hooks.
func (r *TemplateRegistry) WriteHooks(buf *bytes.Buffer, data any) {
	execute(r.hooksTmpl, buf, data)
}

// WriteStaticMock writes a self-registering mock struct with Close.
func (r *TemplateRegistry) WriteStaticMock(buf *bytes.Buffer, data any) {
	execute(r.staticMockTmpl, buf, data)
}

// WriteConvenience writes the single-interface shorthand constructor.
func (r *TemplateRegistry) WriteConvenience(buf *bytes.Buffer, data any) {
	execute(r.convenienceTmpl, buf, data)
}

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}
