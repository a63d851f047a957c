package cmd

import (
	"context"
	"fmt"

	"github.com/viant/iconset-mcp/icon"
	"github.com/viant/iconset-mcp/icon/action"
	"github.com/viant/iconset-mcp/mcp/tool"
)

// ListCmd prints every icon of the catalog.
type ListCmd struct {
	Prefix string `short:"p" long:"prefix" description:"only icons of this icon set"`
	Limit  int    `short:"l" long:"limit" description:"maximum number of icons (0 uses config default)"`
	JSON   bool   `long:"json" description:"print result as JSON"`
}

func (c *ListCmd) Execute(_ []string) error {
	out := &action.IconsOutput{}
	if err := callIcons(context.Background(), "list", &action.ListInput{Prefix: c.Prefix, Limit: c.Limit}, out); err != nil {
		return err
	}
	return printRecords(out.Icons, c.JSON)
}

// SearchCmd prints icons whose key contains the query, ignoring case.
type SearchCmd struct {
	Query string `short:"q" long:"query" description:"substring of the icon key (or first argument)"`
	Limit int    `short:"l" long:"limit" description:"maximum number of icons (0 uses config default)"`
	JSON  bool   `long:"json" description:"print result as JSON"`
}

func (c *SearchCmd) Execute(args []string) error {
	query := firstArg(c.Query, args)
	out := &action.IconsOutput{}
	if err := callIcons(context.Background(), "search", &action.SearchInput{Query: query, Limit: c.Limit}, out); err != nil {
		return err
	}
	return printRecords(out.Icons, c.JSON)
}

// CommonCmd prints the curated icon names.
type CommonCmd struct {
	JSON bool `long:"json" description:"print result as JSON"`
}

func (c *CommonCmd) Execute(_ []string) error {
	out := &action.CommonOutput{}
	if err := callIcons(context.Background(), "common", nil, out); err != nil {
		return err
	}
	if c.JSON {
		return printJSON(out)
	}
	for _, name := range out.Icons {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// SourcesCmd prints configured icon sets with their icon counts.
type SourcesCmd struct {
	JSON bool `long:"json" description:"print result as JSON"`
}

func (c *SourcesCmd) Execute(_ []string) error {
	out := &action.SourcesOutput{}
	if err := callIcons(context.Background(), "sources", nil, out); err != nil {
		return err
	}
	if c.JSON {
		return printJSON(out)
	}
	for _, info := range out.Sources {
		fmt.Fprintf(stdout, "%s\t%d\n", info.Prefix, info.Count)
	}
	return nil
}

// callIcons runs an icon action method directly on the service's action set.
func callIcons(ctx context.Context, method string, input, output interface{}) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	exec, err := svc.Icons().Method(method)
	if err != nil {
		return fmt.Errorf("%v: %w", tool.NewName(action.Name, method), err)
	}
	return exec(ctx, input, output)
}

func printRecords(records []icon.Record, asJSON bool) error {
	if asJSON {
		return printJSON(records)
	}
	for _, record := range records {
		fmt.Fprintf(stdout, "%s\t%s\n", record.Name, record.Prefix)
	}
	return nil
}
