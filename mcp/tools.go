package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/iconset-mcp/internal/conv"
	"github.com/viant/iconset-mcp/mcp/matcher"
	"github.com/viant/iconset-mcp/mcp/tool"
	"github.com/viant/iconset-mcp/mcp/tool/conversion"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

const defaultToolTimeout = time.Minute

// Tools returns an entry for every action method exposed by the workflow
// service.
func (s *Service) Tools() serverproto.Tools {
	var result = make(serverproto.Tools, 0)

	actions := s.Workflow.Service.Actions()
	for _, name := range actions.Services() {
		service := actions.Lookup(name)
		if service == nil {
			continue
		}
		for _, method := range service.Methods() {
			aTool, err := s.LookupTool(tool.NewName(name, method.Name).String())
			if err != nil {
				continue
			}
			result = append(result, aTool)
		}
	}
	return result
}

// MatchTools returns tools whose canonical name or service/method path
// matches pattern (see matcher.Match).
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result = make(serverproto.Tools, 0)
	for _, entry := range s.Tools() {
		name := tool.Name(entry.Metadata.Name)
		if matcher.Match(pattern, name.String(), name.Path()) {
			result = append(result, entry)
		}
	}
	return result
}

// LookupTool builds the registry entry for the tool with the given name.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	sig, err := s.lookupSignature(tool.Name(name))
	if err != nil {
		return nil, err
	}
	toolSig := &types.Signature{
		Name:        name,
		Description: sig.Description,
		Input:       sig.Input,
		Output:      sig.Output,
	}
	toolEntry := serverproto.ToolEntry{}
	if toolEntry.Metadata, err = conversion.BuildSchema(toolSig); err != nil {
		return nil, err
	}
	toolEntry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments, defaultToolTimeout)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: err.Error(),
			})
			return res, nil
		}
		data, err := json.Marshal(output)
		if err != nil {
			return nil, jsonrpc.NewError(jsonrpc.InternalError, err.Error(), nil)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: string(data),
		})
		return res, nil
	}
	return &toolEntry, nil
}

// ExecuteTool invokes the action behind name with args converted into the
// method input type.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}, timeout time.Duration) (interface{}, error) {
	toolName := tool.Name(tool.Canonical(name))
	sig, err := s.lookupSignature(toolName)
	if err != nil {
		return nil, err
	}
	service := s.Workflow.Service.Actions().Lookup(toolName.Service())
	exec, err := service.Method(sig.Name)
	if err != nil {
		return nil, err
	}

	input := newValue(sig.Input)
	if len(args) > 0 && input != nil {
		if err := conv.Convert(args, input); err != nil {
			return nil, fmt.Errorf("invalid %v arguments: %w", toolName, err)
		}
	}
	output := newValue(sig.Output)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := exec(ctx, input, output); err != nil {
		return nil, err
	}
	return output, nil
}

func (s *Service) lookupSignature(name tool.Name) (*types.Signature, error) {
	service := s.Workflow.Service.Actions().Lookup(name.Service())
	if service == nil {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	sig := service.Methods().Lookup(name.Method())
	if sig == nil {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return sig, nil
}

func newValue(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}
