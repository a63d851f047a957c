package cmd

import (
	"fmt"
	"sort"
)

// ListToolsCmd prints every registered tool, optionally filtered by pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"tool pattern: *, prefix (icon/) or exact name" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	tools := svc.MatchTools(c.Pattern)
	sort.Slice(tools, func(i, j int) bool { return tools[i].Metadata.Name < tools[j].Metadata.Name })
	for _, t := range tools {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Fprintf(stdout, "%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
