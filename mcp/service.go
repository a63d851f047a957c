package mcp

import (
	"context"
	"sync/atomic"

	"github.com/viant/fluxor"
	"github.com/viant/iconset-mcp/icon"
	"github.com/viant/iconset-mcp/icon/action"
	"github.com/viant/iconset-mcp/icon/loader"
	"github.com/viant/iconset-mcp/mcp/config"
)

// Service bundles configuration, the icon catalog and a Fluxor workflow engine
// hosting the icon actions. Bootstrap lives in bootstrap.go.
type Service struct {
	Workflow
	started int32
	config  *config.Config
	loader  *loader.Service
	sources []icon.Source
	catalog *icon.Catalog
	icons   *action.Service
}

type Workflow struct {
	Options  []fluxor.Option
	Runtime  *fluxor.Runtime
	Service  *fluxor.Service
	Builtins []string
}

// WorkflowRuntime returns the underlying Fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the Fluxor service exposing all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// Catalog returns the icon catalog built from the configured sources.
func (s *Service) Catalog() *icon.Catalog { return s.catalog }

// Icons returns the icon action service.
func (s *Service) Icons() *action.Service { return s.icons }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithSources injects icon sources, taking precedence over configured and
// bundled ones.
func WithSources(sources ...icon.Source) Option {
	return func(s *Service) {
		s.sources = append(s.sources, sources...)
	}
}

// WithLoader overrides the icon-set loader used for configured sources.
func WithLoader(l *loader.Service) Option {
	return func(s *Service) {
		s.loader = l
	}
}

// WithWorkflowOptions appends additional Fluxor options used when the
// workflow engine gets instantiated.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// New constructs a new service instance.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the underlying Fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown terminates the Fluxor runtime. Additional invocations after the
// first successful call have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
