package mcp

import (
	"sort"

	"github.com/viant/fluxor/model/types"
	"github.com/viant/iconset-mcp/mcp/matcher"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	storage "github.com/viant/fluxor/service/action/system/storage"
)

// builtinFactories lists Fluxor action services that can be enabled next to
// the icon actions, mostly for workflows post-processing icon results. Keys
// match the service names exposed by each implementation.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/storage": func() types.Service { return storage.New() },
}

// matchBuiltins returns the sorted builtin names selected by patterns ("*",
// prefix or exact name).
func matchBuiltins(patterns []string) []string {
	var names []string
	for name := range builtinFactories {
		for _, pattern := range patterns {
			if matcher.Match(pattern, name) {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// resolveBuiltinServices instantiates the builtins selected by patterns.
func resolveBuiltinServices(patterns []string) []types.Service {
	names := matchBuiltins(patterns)
	out := make([]types.Service, 0, len(names))
	for _, name := range names {
		out = append(out, builtinFactories[name]())
	}
	return out
}
