package cmd

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/viant/iconset-mcp/mcp/config"
)

// Run is the entry point for the CLI, kept out of package main so that tests
// can drive it.
func Run(args []string) {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid environment")
	}
	initLogging(env.LogLevel)

	cfgPath := extractConfigPath(args)
	if cfgPath == "" {
		cfgPath = env.Config
	}
	setConfigPath(cfgPath)
	setDebugConfig(env.DebugConfig)

	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = stdout.Write([]byte(flagsErr.Message + "\n"))
			return
		}
		log.Fatal().Err(err).Msg("iconset")
	}
}

// extractConfigPath searches the raw argument list for the -f/--config option
// before full parsing so that sub-commands can load the config early.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}

func initLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
}
