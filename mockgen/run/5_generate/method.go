package generate

import (
	"strconv"
	"strings"
)

// writeForwardingMethod emits the instance method that forwards a call to
// the engine's verification entry point of matching arity.
func writeForwardingMethod(w *codeWriter, mockName, typeParams string, sh methodShape, ifaceName string) {
	w.pf("\n// %s implements %s.\n", sh.Name, ifaceName)
	w.pf("func (m *%s%s) %s(%s)%s {\n", mockName, typeParams, sh.Name, sh.ParamDecls, sh.returnList())

	call := verifyCall(sh, "m.scenario", "m.id", sh.IDConst)

	switch len(sh.ResultTypes) {
	case 0:
		w.pf("\t%s\n", call)
	case 1:
		w.pf("\treturn %s\n", call)
	default:
		w.pf("\tr := %s\n\n", call)
		w.pf("\treturn %s\n", resultUnpack(sh))
	}

	w.ps("}\n")
}

// writeBuilderMethod emits the <Method>Call expectation builder on recv.
func writeBuilderMethod(w *codeWriter, recvType, typeParams string, sh methodShape) {
	matcherDecls := make([]string, len(sh.ArgNames))
	for i, name := range sh.ArgNames {
		matcherDecls[i] = name + " scenario.Matcher[" + sh.ArgTypes[i] + "]"
	}

	w.pf("\n// %sCall registers an expectation for %s.\n", sh.Name, sh.Name)
	w.pf("func (m *%s%s) %sCall(%s) scenario.CallMatch%d%s {\n",
		recvType, typeParams, sh.Name, strings.Join(matcherDecls, ", "),
		len(sh.ArgTypes), sh.engineTypeArgs())
	w.pf("\treturn scenario.NewCallMatch%d%s(m.scenario, m.id, %s, %q%s)\n",
		len(sh.ArgTypes), sh.engineTypeArgs(), sh.IDConst, sh.Name, joinLeadingComma(sh.ArgNames))
	w.ps("}\n")
}

// writeReturnsStruct emits the multi-result carrier for one method.
func writeReturnsStruct(w *codeWriter, typeParamsDecl string, sh methodShape) {
	w.pf("\n// %s carries the results of %s.\n", sh.ReturnsStruct, sh.Name)
	w.pf("type %s%s struct {\n", sh.ReturnsStruct, typeParamsDecl)

	for i, typ := range sh.ResultTypes {
		w.pf("\tResult%d %s\n", i, typ)
	}

	w.ps("}\n")
}

// writeStaticForwarder emits the free function that routes a receiver-less
// member through the process-wide static-mock table. funcName is the
// emitted function's name; it differs from the member name when the
// original declaration shares the package.
func writeStaticForwarder(w *codeWriter, funcName string, sh methodShape) {
	w.pf("\n// %s forwards %s through the live static mock.\n", funcName, sh.Name)
	w.pf("func %s(%s)%s {\n", funcName, sh.ParamDecls, sh.returnList())
	w.pf("\tmockID, s := scenario.LookupStatic(%s)\n", sh.IDConst)

	call := verifyCall(sh, "s", "mockID", sh.IDConst)

	switch len(sh.ResultTypes) {
	case 0:
		w.pf("\t%s\n", call)
	case 1:
		w.pf("\n\treturn %s\n", call)
	default:
		w.pf("\tr := %s\n\n", call)
		w.pf("\treturn %s\n", resultUnpack(sh))
	}

	w.ps("}\n")
}

// verifyCall renders the engine verification call for a method shape.
func verifyCall(sh methodShape, scenarioExpr, mockIDExpr, idConst string) string {
	var buf strings.Builder

	buf.WriteString("scenario.Verify")
	buf.WriteString(strconv.Itoa(len(sh.ArgTypes)))
	buf.WriteString(sh.engineTypeArgs())
	buf.WriteString("(")
	buf.WriteString(scenarioExpr)
	buf.WriteString(", scenario.MethodData{\n")
	buf.WriteString("\t\tMockID:      " + mockIDExpr + ",\n")
	buf.WriteString("\t\tInterfaceID: " + idConst + ",\n")
	buf.WriteString("\t\tMethodName:  \"" + sh.Name + "\",\n")
	buf.WriteString("\t}")
	buf.WriteString(joinLeadingComma(sh.ArgNames))
	buf.WriteString(")")

	return buf.String()
}

// resultUnpack renders "r.Result0, r.Result1, ..." for multi-result
// forwarding bodies.
func resultUnpack(sh methodShape) string {
	parts := make([]string, len(sh.ResultTypes))
	for i := range sh.ResultTypes {
		parts[i] = "r.Result" + strconv.Itoa(i)
	}

	return strings.Join(parts, ", ")
}

// joinLeadingComma renders ", a, b" for appending names to a call.
func joinLeadingComma(names []string) string {
	if len(names) == 0 {
		return ""
	}

	return ", " + strings.Join(names, ", ")
}
