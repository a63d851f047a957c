package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/viant/iconset-mcp/mcp"
	mcpconfig "github.com/viant/iconset-mcp/mcp/config"
)

var (
	cfgPath     string
	debugConfig bool

	stdout io.Writer = os.Stdout

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command runs.
func setConfigPath(p string) { cfgPath = p }

func setDebugConfig(debug bool) { debugConfig = debug }

// serviceSingleton initialises an mcp.Service only once and reuses the instance
// across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			if cfg, err = mcpconfig.Load(ctx, cfgPath); err != nil {
				svcErr = err
				return
			}
			if debugConfig {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
		if svcErr == nil {
			svcErr = svcInst.Start(ctx)
		}
	})
	return svcInst, svcErr
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = stdout.Write(append(data, '\n'))
	return err
}

// firstArg prefers an explicit flag value and falls back to the first
// positional argument.
func firstArg(flagValue string, args []string) string {
	if flagValue != "" || len(args) == 0 {
		return flagValue
	}
	return args[0]
}
