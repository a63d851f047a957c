package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/samber/lo"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/iconset-mcp/icon"
	"github.com/viant/iconset-mcp/internal/conv"
)

// Name is the Fluxor service name of the icon actions.
const Name = "icon"

// Service implements types.Service over an icon catalog.
type Service struct {
	catalog   *icon.Catalog
	limit     int
	sigs      types.Signatures
	executors map[string]types.Executable
}

// Option customises the action service.
type Option func(*Service)

// WithLimit sets the result limit applied when a request does not carry one.
func WithLimit(limit int) Option {
	return func(s *Service) {
		s.limit = limit
	}
}

// New builds the icon action service.
func New(catalog *icon.Catalog, opts ...Option) *Service {
	s := &Service{catalog: catalog, executors: map[string]types.Executable{}}
	for _, opt := range opts {
		opt(s)
	}

	type op struct {
		name string
		in   reflect.Type
		out  reflect.Type
		exec types.Executable
		desc string
	}
	ops := []op{
		{
			name: "list",
			in:   reflect.TypeOf(&ListInput{}),
			out:  reflect.TypeOf(&IconsOutput{}),
			exec: s.list,
			desc: "List all available icons, optionally restricted to one icon set",
		},
		{
			name: "search",
			in:   reflect.TypeOf(&SearchInput{}),
			out:  reflect.TypeOf(&IconsOutput{}),
			exec: s.search,
			desc: "Search icons whose key contains the query, ignoring case",
		},
		{
			name: "common",
			in:   reflect.TypeOf(&CommonInput{}),
			out:  reflect.TypeOf(&CommonOutput{}),
			exec: s.common,
			desc: "Return the curated list of commonly used icon names",
		},
		{
			name: "sources",
			in:   reflect.TypeOf(&SourcesInput{}),
			out:  reflect.TypeOf(&SourcesOutput{}),
			exec: s.sources,
			desc: "List configured icon sets with their icon counts",
		},
	}
	for _, o := range ops {
		s.executors[o.name] = o.exec
		s.sigs = append(s.sigs, types.Signature{
			Name:        o.name,
			Description: o.desc,
			Input:       o.in,
			Output:      o.out,
		})
	}
	return s
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

func (s *Service) list(_ context.Context, input, output interface{}) error {
	in := &ListInput{}
	if err := conv.Convert(input, in); err != nil {
		return fmt.Errorf("invalid list input: %w", err)
	}
	records, err := s.catalog.All()
	if err != nil {
		return err
	}
	if in.Prefix != "" {
		records = lo.Filter(records, func(record icon.Record, _ int) bool {
			return record.Prefix == in.Prefix
		})
	}
	return assign(output, IconsOutput{Icons: s.truncate(records, in.Limit)})
}

func (s *Service) search(_ context.Context, input, output interface{}) error {
	in := &SearchInput{}
	if err := conv.Convert(input, in); err != nil {
		return fmt.Errorf("invalid search input: %w", err)
	}
	records, err := s.catalog.Search(in.Query)
	if err != nil {
		return err
	}
	return assign(output, IconsOutput{Icons: s.truncate(records, in.Limit)})
}

func (s *Service) common(_ context.Context, _, output interface{}) error {
	return assign(output, CommonOutput{Icons: icon.Common()})
}

func (s *Service) sources(_ context.Context, _, output interface{}) error {
	infos, err := s.catalog.Sources()
	if err != nil {
		return err
	}
	return assign(output, SourcesOutput{Sources: infos})
}

// truncate keeps the leading records up to limit, falling back to the service
// default; zero means unlimited.
func (s *Service) truncate(records []icon.Record, limit int) []icon.Record {
	if limit <= 0 {
		limit = s.limit
	}
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}

func assign(output interface{}, result interface{}) error {
	if output == nil {
		return nil
	}
	if ptr, ok := output.(*interface{}); ok {
		*ptr = result
		return nil
	}
	return conv.Convert(result, output)
}
