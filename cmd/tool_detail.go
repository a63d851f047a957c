package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/viant/iconset-mcp/mcp/tool"
)

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (icon-search or icon/search), or first argument"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(args []string) error {
	name := firstArg(c.Name, args)
	if name == "" {
		return fmt.Errorf("tool name was empty")
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	entry, err := svc.LookupTool(tool.Canonical(name))
	if err != nil {
		return fmt.Errorf("tool %q not found: %w", name, err)
	}
	info := struct {
		Name         string      `json:"name"`
		Description  string      `json:"description"`
		InputSchema  interface{} `json:"inputSchema"`
		OutputSchema interface{} `json:"outputSchema,omitempty"`
	}{Name: entry.Metadata.Name, InputSchema: entry.Metadata.InputSchema, OutputSchema: entry.Metadata.OutputSchema}
	if entry.Metadata.Description != nil {
		info.Description = *entry.Metadata.Description
	}

	if c.JSON {
		return printJSON(info)
	}
	fmt.Fprintf(stdout, "Name : %s\n", info.Name)
	fmt.Fprintf(stdout, "Desc : %s\n", info.Description)
	js, _ := json.MarshalIndent(info.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}
