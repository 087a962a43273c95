// Package astutil renders dst type expressions back to Go source text.
// The decorator's printer only handles whole files, so generation renders
// individual signatures through the functions here instead.
package astutil

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// TypeString renders a type expression to Go source.
//
//nolint:cyclop,funlen // Type-switch dispatcher over the dst expression kinds; complexity is inherent
func TypeString(expr dst.Expr) string {
	switch t := expr.(type) {
	case nil:
		return ""
	case *dst.Ident:
		return t.Name
	case *dst.BasicLit:
		return t.Value
	case *dst.SelectorExpr:
		return TypeString(t.X) + "." + t.Sel.Name
	case *dst.StarExpr:
		return "*" + TypeString(t.X)
	case *dst.Ellipsis:
		return "..." + TypeString(t.Elt)
	case *dst.ParenExpr:
		return "(" + TypeString(t.X) + ")"
	case *dst.ArrayType:
		if t.Len != nil {
			return "[" + TypeString(t.Len) + "]" + TypeString(t.Elt)
		}

		return "[]" + TypeString(t.Elt)
	case *dst.MapType:
		return "map[" + TypeString(t.Key) + "]" + TypeString(t.Value)
	case *dst.ChanType:
		switch t.Dir {
		case dst.SEND:
			return "chan<- " + TypeString(t.Value)
		case dst.RECV:
			return "<-chan " + TypeString(t.Value)
		default:
			return "chan " + TypeString(t.Value)
		}
	case *dst.IndexExpr:
		return TypeString(t.X) + "[" + TypeString(t.Index) + "]"
	case *dst.IndexListExpr:
		args := make([]string, len(t.Indices))
		for i, idx := range t.Indices {
			args[i] = TypeString(idx)
		}

		return TypeString(t.X) + "[" + strings.Join(args, ", ") + "]"
	case *dst.FuncType:
		return "func" + SignatureString(t)
	case *dst.StructType:
		return structString(t)
	case *dst.InterfaceType:
		return interfaceString(t)
	case *dst.UnaryExpr:
		return t.Op.String() + TypeString(t.X)
	case *dst.BinaryExpr:
		return TypeString(t.X) + " " + t.Op.String() + " " + TypeString(t.Y)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// SignatureString renders a function type's parameter and result lists,
// without the leading func keyword, preserving parameter names.
func SignatureString(funcType *dst.FuncType) string {
	var buf strings.Builder

	buf.WriteString("(")
	buf.WriteString(strings.Join(FieldStrings(funcType.Params), ", "))
	buf.WriteString(")")

	results := FieldStrings(funcType.Results)

	switch len(results) {
	case 0:
	case 1:
		buf.WriteString(" ")
		buf.WriteString(results[0])
	default:
		buf.WriteString(" (")
		buf.WriteString(strings.Join(results, ", "))
		buf.WriteString(")")
	}

	return buf.String()
}

// FieldStrings renders each field of a list as "names type" or just the
// type for anonymous fields.
func FieldStrings(fields *dst.FieldList) []string {
	if fields == nil {
		return nil
	}

	parts := make([]string, 0, len(fields.List))

	for _, field := range fields.List {
		typeStr := TypeString(field.Type)

		if len(field.Names) == 0 {
			parts = append(parts, typeStr)

			continue
		}

		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}

		parts = append(parts, strings.Join(names, ", ")+" "+typeStr)
	}

	return parts
}

// FlattenedTypes expands a field list into one type string per declared
// name, or one per anonymous field.
func FlattenedTypes(fields *dst.FieldList) []string {
	if fields == nil {
		return nil
	}

	var parts []string

	for _, field := range fields.List {
		typeStr := TypeString(field.Type)

		count := len(field.Names)
		if count == 0 {
			count = 1
		}

		for range count {
			parts = append(parts, typeStr)
		}
	}

	return parts
}

// FlattenedNames expands a field list into one name per declared name.
// Anonymous fields get a positional fallback name.
func FlattenedNames(fields *dst.FieldList, fallbackPrefix string) []string {
	if fields == nil {
		return nil
	}

	var names []string

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			names = append(names, fmt.Sprintf("%s%d", fallbackPrefix, len(names)))

			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" || name.Name == "" {
				names = append(names, fmt.Sprintf("%s%d", fallbackPrefix, len(names)))

				continue
			}

			names = append(names, name.Name)
		}
	}

	return names
}

func structString(structType *dst.StructType) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		var buf strings.Builder

		if len(field.Names) > 0 {
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}

			buf.WriteString(strings.Join(names, ", "))
			buf.WriteString(" ")
		}

		buf.WriteString(TypeString(field.Type))

		if field.Tag != nil {
			buf.WriteString(" ")
			buf.WriteString(field.Tag.Value)
		}

		fields = append(fields, buf.String())
	}

	return "struct{ " + strings.Join(fields, "; ") + " }"
}

func interfaceString(interfaceType *dst.InterfaceType) string {
	if interfaceType.Methods == nil || len(interfaceType.Methods.List) == 0 {
		return "interface{}"
	}

	members := make([]string, 0, len(interfaceType.Methods.List))

	for _, member := range interfaceType.Methods.List {
		funcType, isMethod := member.Type.(*dst.FuncType)
		if !isMethod || len(member.Names) == 0 {
			// Embedded interface or type element.
			members = append(members, TypeString(member.Type))

			continue
		}

		members = append(members, member.Names[0].Name+SignatureString(funcType))
	}

	return "interface{ " + strings.Join(members, "; ") + " }"
}
