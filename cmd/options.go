package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON location"`

	List        *ListCmd        `command:"list"         description:"List all icons"`
	Search      *SearchCmd      `command:"search"       description:"Search icons by key substring"`
	Common      *CommonCmd      `command:"common"       description:"Print the curated common icon names"`
	Sources     *SourcesCmd     `command:"sources"      description:"List configured icon sets"`
	ListTools   *ListToolsCmd   `command:"list-tools"   description:"List all registered tools"`
	ListActions *ListActionsCmd `command:"list-actions" description:"List Fluxor services and their actions"`
	Tool        *ToolCmd        `command:"tool"         description:"Show detailed info about one MCP tool"`
	Exec        *ExecCmd        `command:"exec"         description:"Execute a tool"`
	Run         *RunCmd         `command:"run"          description:"Run a workflow"`
	Serve       *ServeCmd       `command:"serve"        description:"Start MCP server exposing the registered tools"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(command string) {
	switch command {
	case "list":
		o.List = &ListCmd{}
	case "search":
		o.Search = &SearchCmd{}
	case "common":
		o.Common = &CommonCmd{}
	case "sources":
		o.Sources = &SourcesCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "list-actions":
		o.ListActions = &ListActionsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "run":
		o.Run = &RunCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
