package generate

import (
	"fmt"

	resolve "github.com/scenariotest/scenario/mockgen/run/3_resolve"
)

// externCode emits free-function mode: no instance mock, one interface id
// for the whole block. The mock struct itself registers in the static
// table, builders hang off it, and every input function gets a same-named
// forwarder dispatching through the table.
func externCode(plan Plan) (string, error) {
	if len(plan.Descriptors) != 1 {
		return "", fmt.Errorf("%w: free-function mode resolved to %d descriptors",
			resolve.ErrInternalInconsistency, len(plan.Descriptors))
	}

	desc := plan.Descriptors[0]

	if len(desc.AssocTypes) > 0 {
		return "", fmt.Errorf("%w: free-function blocks cannot carry type parameters",
			resolve.ErrUnsupportedShape)
	}

	for _, method := range desc.Methods {
		if !method.Static {
			return "", fmt.Errorf(
				"%w: free-function mode produced an instance member %s",
				resolve.ErrInternalInconsistency, method.Name)
		}
	}

	body := &codeWriter{}
	tmpl := NewTemplateRegistry()

	writeIDConsts(body, plan)

	tmpl.WriteStaticMock(&body.buf, map[string]any{
		"StaticName":     plan.MockName,
		"QualifiedNames": qualifiedNames(plan.Descriptors),
		"IDList":         idList(plan.MockName, plan.Descriptors),
	})

	idConst := idConstName(plan.MockName, desc.Name)

	for _, method := range desc.Methods {
		shape := shapeMethod(plan.MockName, method, method.Func, idConst)

		if shape.ReturnsStruct != "" {
			writeReturnsStruct(body, "", shape)
		}

		writeBuilderMethod(body, plan.MockName, "", shape)
		writeStaticForwarder(body, shape.Name, shape)
	}

	return assemble(plan, body.String())
}
