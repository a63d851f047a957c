package mcp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/viant/fluxor"
	"github.com/viant/iconset-mcp/icon"
	"github.com/viant/iconset-mcp/icon/action"
	"github.com/viant/iconset-mcp/icon/data"
	"github.com/viant/iconset-mcp/icon/loader"
	"github.com/viant/iconset-mcp/mcp/config"
)

// init orchestrates bootstrap once all options have been applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.initCatalog(ctx); err != nil {
		return fmt.Errorf("init icon catalog: %w", err)
	}
	s.initWorkflowService()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.loader == nil {
		s.loader = loader.New()
	}
}

// initCatalog resolves sources: injected ones first, then configured
// locations, then the bundled icon sets.
func (s *Service) initCatalog(ctx context.Context) error {
	sources := s.sources
	switch {
	case len(sources) > 0:
	case len(s.config.Sources) > 0:
		var err error
		if sources, err = s.loader.LoadAll(ctx, s.config.Sources); err != nil {
			return err
		}
	default:
		sources = data.Sources()
	}
	s.sources = sources
	s.catalog = icon.NewCatalog(sources...)
	s.icons = action.New(s.catalog, action.WithLimit(s.config.Limit))
	log.Debug().Int("sources", len(sources)).Msg("icon catalog ready")
	return nil
}

// initWorkflowService assembles the Fluxor options and instantiates the
// engine with the icon actions and selected builtins as extensions.
func (s *Service) initWorkflowService() {
	s.Workflow.Builtins = matchBuiltins(s.config.Builtins)
	extensions := append(resolveBuiltinServices(s.config.Builtins), s.icons)

	opts := []fluxor.Option{fluxor.WithExtensionServices(extensions...)}
	// Options passed through WithWorkflowOptions go last so they can override defaults.
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
}
