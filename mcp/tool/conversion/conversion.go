package conversion

import (
	"fmt"
	"reflect"

	"github.com/viant/fluxor/model/types"
	schema "github.com/viant/mcp-protocol/schema"
)

// BuildSchema builds MCP tool metadata with input and output schemas for sig.
func BuildSchema(sig *types.Signature) (schema.Tool, error) {
	if sig.Input == nil || sig.Output == nil {
		return schema.Tool{}, fmt.Errorf("failed to build schema for %s: missing input or output type", sig.Name)
	}
	var inputSchema schema.ToolInputSchema
	if err := inputSchema.Load(reflect.New(elem(sig.Input)).Interface()); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", sig.Name, err)
	}
	if inputSchema.Type == "" {
		inputSchema.Type = "object"
	}
	props, required := schema.StructToProperties(elem(sig.Output))
	outputSchema := &schema.ToolOutputSchema{Properties: props, Required: required, Type: "object"}
	desc := sig.Description
	return schema.Tool{Name: sig.Name, Description: &desc, InputSchema: inputSchema, OutputSchema: outputSchema}, nil
}

func elem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
