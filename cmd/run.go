package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// RunCmd starts a Fluxor workflow. Workflows can call the icon actions
// (icon/search, icon/list, ...) like any other Fluxor action.
type RunCmd struct {
	Location   string `short:"l" long:"location" description:"Workflow definition path (YAML)"`
	InputFile  string `short:"i" long:"input"    description:"JSON file with initial state (stdin if empty)"`
	State      string `short:"s" long:"state" description:"JSON Object with initial state (stdin if empty)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"30"`
}

func (c *RunCmd) Execute(_ []string) error {
	if c.Location == "" {
		return fmt.Errorf("workflow location must be provided via -l/--location")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	rt := svc.WorkflowRuntime()

	ctx := context.Background()
	wf, err := rt.LoadWorkflow(ctx, c.Location)
	if err != nil {
		return fmt.Errorf("load workflow: %w", err)
	}

	initState, err := c.initialState()
	if err != nil {
		return err
	}

	process, wait, err := rt.StartProcess(ctx, wf, initState)
	if err != nil {
		return fmt.Errorf("start process: %w", err)
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	output, err := wait(ctx, timeout)
	if err != nil {
		return fmt.Errorf("wait for process: %w", err)
	}
	log.Info().Str("process", process.ID).Msg("workflow completed")
	return printJSON(output)
}

// initialState decodes --state, or the input file / stdin when no inline
// state was given. Empty input yields an empty state.
func (c *RunCmd) initialState() (map[string]interface{}, error) {
	state := make(map[string]interface{})
	if c.State != "" {
		if err := json.Unmarshal([]byte(strings.TrimSpace(c.State)), &state); err != nil {
			return nil, fmt.Errorf("decode initial state: %w", err)
		}
		return state, nil
	}

	var reader io.Reader = os.Stdin
	if c.InputFile != "" {
		f, err := os.Open(c.InputFile)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}
	if data, err := io.ReadAll(reader); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &state); err != nil {
			return nil, fmt.Errorf("decode initial state: %w", err)
		}
	}
	return state, nil
}
