// Package rewrite substitutes an interface's self-references inside type
// expressions. Method signatures may name the interface they belong to;
// generated code needs those references resolved either against the owning
// interface (when a mock implements several) or to the concrete mock type
// (for receiver-less constructor-style methods returning the self type).
package rewrite

import (
	"github.com/dave/dst"
)

// Replacer produces the replacement for one self-reference. The reference
// is passed whole, so an instantiated self like Name[T] can be replaced as
// a unit.
type Replacer func(self dst.Expr) dst.Expr

// QualifyForInterface rewrites self-references to qualifier.selfName, the
// form that resolves against one specific interface when the surrounding
// mock implements several.
func QualifyForInterface(expr dst.Expr, selfName, qualifier string) dst.Expr {
	return Type(expr, selfName, Qualify(selfName, qualifier))
}

// Qualify builds the Replacer behind QualifyForInterface. Type arguments of
// an instantiated self-reference are kept and rewritten themselves, so
// Name[T] becomes qualifier.Name[T].
func Qualify(selfName, qualifier string) Replacer {
	var replace Replacer

	replace = func(self dst.Expr) dst.Expr {
		qualified := &dst.SelectorExpr{
			X:   dst.NewIdent(qualifier),
			Sel: dst.NewIdent(selfName),
		}

		switch t := self.(type) {
		case *dst.IndexExpr:
			return &dst.IndexExpr{X: qualified, Index: Type(t.Index, selfName, replace)}
		case *dst.IndexListExpr:
			indices := make([]dst.Expr, len(t.Indices))
			for i, idx := range t.Indices {
				indices[i] = Type(idx, selfName, replace)
			}

			return &dst.IndexListExpr{X: qualified, Indices: indices}
		default:
			return qualified
		}
	}

	return replace
}

// SubstituteConcrete rewrites self-references to a clone of concrete, the
// mock's own type. Receiver-less methods returning the self type emit onto
// the mock type directly, where the interface's name would be wrong.
func SubstituteConcrete(expr dst.Expr, selfName string, concrete dst.Expr) dst.Expr {
	return Type(expr, selfName, func(dst.Expr) dst.Expr {
		return dst.Clone(concrete).(dst.Expr)
	})
}

// Type walks a type expression and hands every reference to selfName to
// replace, rebuilding composite types around the replacements. The input
// expression is not modified.
//
//nolint:cyclop,funlen // Type-switch walker over the dst expression kinds; complexity is inherent
func Type(expr dst.Expr, selfName string, replace Replacer) dst.Expr {
	switch t := expr.(type) {
	case nil:
		return nil
	case *dst.Ident:
		if t.Name == selfName && t.Path == "" {
			return replace(t)
		}

		return dst.Clone(t).(dst.Expr)
	case *dst.IndexExpr:
		// An instantiated self-reference is replaced whole.
		if head, ok := t.X.(*dst.Ident); ok && head.Name == selfName && head.Path == "" {
			return replace(t)
		}

		return &dst.IndexExpr{
			X:     Type(t.X, selfName, replace),
			Index: Type(t.Index, selfName, replace),
		}
	case *dst.IndexListExpr:
		if head, ok := t.X.(*dst.Ident); ok && head.Name == selfName && head.Path == "" {
			return replace(t)
		}

		indices := make([]dst.Expr, len(t.Indices))
		for i, idx := range t.Indices {
			indices[i] = Type(idx, selfName, replace)
		}

		return &dst.IndexListExpr{X: Type(t.X, selfName, replace), Indices: indices}
	case *dst.StarExpr:
		return &dst.StarExpr{X: Type(t.X, selfName, replace)}
	case *dst.ParenExpr:
		return &dst.ParenExpr{X: Type(t.X, selfName, replace)}
	case *dst.Ellipsis:
		return &dst.Ellipsis{Elt: Type(t.Elt, selfName, replace)}
	case *dst.ArrayType:
		return &dst.ArrayType{
			Len: Type(t.Len, selfName, replace),
			Elt: Type(t.Elt, selfName, replace),
		}
	case *dst.MapType:
		return &dst.MapType{
			Key:   Type(t.Key, selfName, replace),
			Value: Type(t.Value, selfName, replace),
		}
	case *dst.ChanType:
		return &dst.ChanType{Dir: t.Dir, Value: Type(t.Value, selfName, replace)}
	case *dst.FuncType:
		return &dst.FuncType{
			Params:  fieldList(t.Params, selfName, replace),
			Results: fieldList(t.Results, selfName, replace),
		}
	default:
		// Selector expressions and literals cannot reference the bare self
		// name; everything else passes through untouched.
		return dst.Clone(t).(dst.Expr)
	}
}

// Signature rewrites a whole method signature, parameters and results.
func Signature(funcType *dst.FuncType, selfName string, replace Replacer) *dst.FuncType {
	return &dst.FuncType{
		Params:  fieldList(funcType.Params, selfName, replace),
		Results: fieldList(funcType.Results, selfName, replace),
	}
}

func fieldList(fields *dst.FieldList, selfName string, replace Replacer) *dst.FieldList {
	if fields == nil {
		return nil
	}

	list := make([]*dst.Field, len(fields.List))

	for i, field := range fields.List {
		names := make([]*dst.Ident, len(field.Names))
		for j, name := range field.Names {
			names[j] = dst.NewIdent(name.Name)
		}

		list[i] = &dst.Field{Names: names, Type: Type(field.Type, selfName, replace)}
	}

	return &dst.FieldList{List: list}
}
