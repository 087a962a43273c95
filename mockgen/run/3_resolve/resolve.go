// Package resolve turns registered interface declarations into the ordered
// descriptor list that drives code generation: every base interface a
// target extends, validated against the supported shape subset, with a
// fresh interface id per descriptor.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/dave/dst"

	astutil "github.com/scenariotest/scenario/mockgen/run/0_util"
	registry "github.com/scenariotest/scenario/mockgen/run/1_registry"
)

// MaxArity is the largest parameter count the engine's verification entry
// points cover.
const MaxArity = 8

// Sentinel errors for the failure classes of resolution. Every failure is
// fatal to the whole generation call.
var (
	// ErrUnsupportedShape marks declarations outside the supported subset.
	ErrUnsupportedShape = errors.New("unsupported declaration shape")
	// ErrUnresolvedBase marks an embedded interface with no known declaration.
	ErrUnresolvedBase = errors.New("unresolved base interface")
	// ErrMissingConfiguration marks a generation call lacking a required option.
	ErrMissingConfiguration = errors.New("missing configuration")
	// ErrInternalInconsistency marks states the resolver should have ruled out.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// Method is one member of a resolved interface. Static members have no
// receiver and dispatch through the static-mock table instead of an
// instance.
type Method struct {
	Name   string
	Func   *dst.FuncType
	Static bool
}

// Descriptor is one interface a mock implements: its identity, the
// associated type names promoted to mock type parameters, and its members.
type Descriptor struct {
	// ModPath qualifies the interface's name; empty means the target's own
	// package.
	ModPath string
	Name    string
	// AssocTypes are the interface's type parameter names, in order.
	AssocTypes []string
	Methods    []Method
	// ID is the fresh interface id allocated for this resolution.
	ID int
}

// QualifiedName renders the descriptor's display identity.
func (d Descriptor) QualifiedName() string {
	if d.ModPath == "" {
		return d.Name
	}

	return d.ModPath + "." + d.Name
}

// HasStatics reports whether any member is receiver-less.
func (d Descriptor) HasStatics() bool {
	for _, m := range d.Methods {
		if m.Static {
			return true
		}
	}

	return false
}

// Primary resolves a registered declaration and everything it extends into
// descriptors ordered bases-first, the primary interface last. Bases are
// resolved recursively through the registry; refs overrides the module
// path recorded for a base. Every descriptor gets a fresh interface id.
func Primary(decl registry.Declaration, refs map[string]string) ([]Descriptor, error) {
	seen := stringset.New()

	descriptors, err := resolveChain(decl, refs, seen)
	if err != nil {
		return nil, err
	}

	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: resolution of %s produced no descriptors",
			ErrInternalInconsistency, decl.Name)
	}

	return descriptors, nil
}

// List resolves an explicit declaration list, in order. Each item's bases
// must name items appearing earlier in the same list; the registry is not
// consulted.
func List(items []registry.Declaration) ([]Descriptor, error) {
	earlier := stringset.New()
	descriptors := make([]Descriptor, 0, len(items))

	for _, item := range items {
		for _, base := range embeddedNames(item.Iface) {
			if !earlier.Contains(base.Name) {
				return nil, fmt.Errorf(
					"%w: %s extends %s, which must appear earlier in the list",
					ErrUnresolvedBase, item.Name, base)
			}
		}

		desc, err := describe(item, item.ModPath)
		if err != nil {
			return nil, err
		}

		descriptors = append(descriptors, desc)
		earlier.Add(item.Name)
	}

	return descriptors, nil
}

// resolveChain walks decl's bases depth-first, emitting each qualified
// interface once, bases before the interfaces extending them.
func resolveChain(
	decl registry.Declaration, refs map[string]string, seen stringset.Set,
) ([]Descriptor, error) {
	if seen.Contains(decl.Key()) {
		return nil, nil
	}

	seen.Add(decl.Key())

	var descriptors []Descriptor

	for _, ref := range embeddedNames(decl.Iface) {
		base, ok := lookupBase(decl, ref, refs)
		if !ok {
			return nil, fmt.Errorf(
				"%w: %s extends %s, which is not registered as mockable",
				ErrUnresolvedBase, decl.Name, ref)
		}

		if path, ok := refs[ref.Name]; ok {
			base.ModPath = path
		}

		resolved, err := resolveChain(base, refs, seen)
		if err != nil {
			return nil, err
		}

		descriptors = append(descriptors, resolved...)
	}

	desc, err := describe(decl, decl.ModPath)
	if err != nil {
		return nil, err
	}

	return append(descriptors, desc), nil
}

// lookupBase resolves an embedded interface reference against the registry.
// Each candidate key is an exact registry match, tried most-specific first:
// the refs-pinned path, the path the written package qualifier imports, the
// embedding declaration's own path, then the bare name, which only ever
// holds path-less registrations.
func lookupBase(
	decl registry.Declaration, ref baseRef, refs map[string]string,
) (registry.Declaration, bool) {
	var keys []string

	if path, ok := refs[ref.Name]; ok {
		keys = append(keys, registry.Qualified(path, ref.Name))
	}

	if ref.Qualifier != "" {
		if path, ok := importPathFor(decl.SourceImports, ref.Qualifier); ok {
			keys = append(keys, registry.Qualified(path, ref.Name))
		}
	}

	keys = append(keys, registry.Qualified(decl.ModPath, ref.Name), ref.Name)

	tried := stringset.New()

	for _, key := range keys {
		if tried.Contains(key) {
			continue
		}

		tried.Add(key)

		if base, ok := registry.Lookup(key); ok {
			return base, true
		}
	}

	return registry.Declaration{}, false
}

// importPathFor resolves a package qualifier to the import path it names at
// the declaration site, by alias first, then by last path segment.
func importPathFor(imports []*dst.ImportSpec, qualifier string) (string, bool) {
	for _, imp := range imports {
		path := strings.Trim(imp.Path.Value, `"`)

		if imp.Name != nil {
			if imp.Name.Name == qualifier {
				return path, true
			}

			continue
		}

		if path == qualifier || strings.HasSuffix(path, "/"+qualifier) {
			return path, true
		}
	}

	return "", false
}

// baseRef is one embedded interface reference: its name plus the package
// qualifier it was written with, when any.
type baseRef struct {
	Name      string
	Qualifier string
}

func (r baseRef) String() string {
	if r.Qualifier == "" {
		return r.Name
	}

	return r.Qualifier + "." + r.Name
}

// embeddedNames extracts the references to the interfaces embedded in
// iface, keeping any package qualifier. Only plain identifiers and
// pkg-qualified names are supported; type set elements (unions,
// underlying-type terms) are not.
func embeddedNames(iface *dst.InterfaceType) []baseRef {
	if iface == nil || iface.Methods == nil {
		return nil
	}

	var refs []baseRef

	for _, member := range iface.Methods.List {
		if len(member.Names) > 0 {
			continue
		}

		switch t := member.Type.(type) {
		case *dst.Ident:
			refs = append(refs, baseRef{Name: t.Name})
		case *dst.SelectorExpr:
			qualifier := ""
			if pkg, ok := t.X.(*dst.Ident); ok {
				qualifier = pkg.Name
			}

			refs = append(refs, baseRef{Name: t.Sel.Name, Qualifier: qualifier})
		}
	}

	return refs
}

// describe validates one declaration and builds its descriptor.
func describe(decl registry.Declaration, modPath string) (Descriptor, error) {
	if modPath == "self" {
		modPath = ""
	}

	assoc, err := associatedTypes(decl)
	if err != nil {
		return Descriptor{}, err
	}

	methods, err := members(decl)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		ModPath:    modPath,
		Name:       decl.Name,
		AssocTypes: assoc,
		Methods:    methods,
		ID:         registry.NextInterfaceID(),
	}, nil
}

// associatedTypes validates the interface's type parameters and returns
// their names. Only the unconstrained form is supported.
func associatedTypes(decl registry.Declaration) ([]string, error) {
	if decl.TypeParams == nil {
		return nil, nil
	}

	var names []string

	for _, field := range decl.TypeParams.List {
		if !isAnyConstraint(field.Type) {
			return nil, fmt.Errorf(
				"%w: type parameter of %s is constrained by %s; only any is supported",
				ErrUnsupportedShape, decl.Name, astutil.TypeString(field.Type))
		}

		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}

	return names, nil
}

// members validates and collects the declaration's methods, instance
// members first in declaration order, then the attached statics.
func members(decl registry.Declaration) ([]Method, error) {
	var methods []Method

	if decl.Iface != nil && decl.Iface.Methods != nil {
		for _, member := range decl.Iface.Methods.List {
			if len(member.Names) == 0 {
				if err := checkEmbedded(decl.Name, member.Type); err != nil {
					return nil, err
				}

				continue
			}

			funcType, ok := member.Type.(*dst.FuncType)
			if !ok {
				return nil, fmt.Errorf("%w: member %s of %s is not a method",
					ErrUnsupportedShape, member.Names[0].Name, decl.Name)
			}

			name := member.Names[0].Name
			if err := checkSignature(decl.Name, name, funcType); err != nil {
				return nil, err
			}

			methods = append(methods, Method{Name: name, Func: funcType})
		}
	}

	for _, static := range decl.Statics {
		if err := checkSignature(decl.Name, static.Name.Name, static.Type); err != nil {
			return nil, err
		}

		methods = append(methods, Method{
			Name:   static.Name.Name,
			Func:   static.Type,
			Static: true,
		})
	}

	return methods, nil
}

// checkEmbedded rejects interface members outside the method-or-embedded
// subset: unions, underlying-type terms, and instantiated generics.
func checkEmbedded(ifaceName string, expr dst.Expr) error {
	switch expr.(type) {
	case *dst.Ident, *dst.SelectorExpr:
		return nil
	default:
		return fmt.Errorf("%w: %s embeds type element %s; only named interfaces may be embedded",
			ErrUnsupportedShape, ifaceName, astutil.TypeString(expr))
	}
}

// checkSignature enforces the supported method shape: no method-level type
// parameters and at most MaxArity parameters.
func checkSignature(ifaceName, methodName string, funcType *dst.FuncType) error {
	if funcType.TypeParams != nil && len(funcType.TypeParams.List) > 0 {
		return fmt.Errorf("%w: method %s.%s declares its own type parameters",
			ErrUnsupportedShape, ifaceName, methodName)
	}

	if arity := len(astutil.FlattenedTypes(funcType.Params)); arity > MaxArity {
		return fmt.Errorf("%w: method %s.%s has %d parameters; at most %d are supported",
			ErrUnsupportedShape, ifaceName, methodName, arity, MaxArity)
	}

	return nil
}

// isAnyConstraint reports whether expr is the unconstrained bound.
func isAnyConstraint(expr dst.Expr) bool {
	switch t := expr.(type) {
	case *dst.Ident:
		return t.Name == "any"
	case *dst.InterfaceType:
		return t.Methods == nil || len(t.Methods.List) == 0
	default:
		return false
	}
}
