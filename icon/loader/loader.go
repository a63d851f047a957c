package loader

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/viant/afs"
	"github.com/viant/iconset-mcp/icon"
	"github.com/viant/iconset-mcp/internal/syncmap"
)

// Location points at one Iconify icon-set document.
type Location struct {
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	URL    string `yaml:"url" json:"url"`
}

// Service downloads icon-set documents.
type Service struct {
	fs        afs.Service
	documents *syncmap.Map[[]byte]
}

// Option customises a loader Service.
type Option func(*Service)

// WithFS overrides the storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a loader backed by afs.
func New(opts ...Option) *Service {
	s := &Service{documents: syncmap.New[[]byte]()}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}

// Load returns a source for location. The document body is downloaded once
// per URL; key extraction is left to the catalog.
func (s *Service) Load(ctx context.Context, location *Location) (icon.Source, error) {
	if location == nil || location.URL == "" {
		return nil, fmt.Errorf("icon source location url was empty")
	}
	data, ok := s.documents.Lookup(location.URL)
	if !ok {
		var err error
		if data, err = s.fs.DownloadWithURL(ctx, location.URL); err != nil {
			return nil, fmt.Errorf("download icon set %q: %w", location.URL, err)
		}
		s.documents.Set(location.URL, data)
		log.Debug().Str("url", location.URL).Int("bytes", len(data)).Int("cached", s.documents.Len()).Msg("loaded icon set")
	}
	return icon.NewIconifySource(location.Prefix, data), nil
}

// LoadAll loads locations keeping their order.
func (s *Service) LoadAll(ctx context.Context, locations []*Location) ([]icon.Source, error) {
	result := make([]icon.Source, 0, len(locations))
	for _, location := range locations {
		source, err := s.Load(ctx, location)
		if err != nil {
			return nil, err
		}
		result = append(result, source)
	}
	return result, nil
}

// Reset drops cached documents.
func (s *Service) Reset() {
	s.documents.Reset()
}
