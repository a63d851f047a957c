package icon

import (
	"strings"

	"github.com/samber/lo"
)

// Catalog aggregates records from its sources. It holds no derived state:
// every call reads the sources again.
type Catalog struct {
	sources []Source
}

// SourceInfo summarises one configured source.
type SourceInfo struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Count  int    `json:"count" yaml:"count"`
}

// NewCatalog creates a catalog over sources, kept in the given order.
func NewCatalog(sources ...Source) *Catalog {
	return &Catalog{sources: append([]Source(nil), sources...)}
}

// All returns one record per icon key, sources concatenated in catalog order
// and keys in source order. A malformed source fails the whole call.
func (c *Catalog) All() ([]Record, error) {
	result := make([]Record, 0)
	for _, source := range c.sources {
		keys, err := source.Keys()
		if err != nil {
			return nil, err
		}
		prefix := source.Prefix()
		result = append(result, lo.Map(keys, func(key string, _ int) Record {
			return NewRecord(prefix, key)
		})...)
	}
	return result, nil
}

// Search returns records whose label contains query, ignoring case. An empty
// query matches nothing.
func (c *Catalog) Search(query string) ([]Record, error) {
	if query == "" {
		return []Record{}, nil
	}
	query = strings.ToLower(query)
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(record Record, _ int) bool {
		return strings.Contains(strings.ToLower(record.Label), query)
	}), nil
}

// Sources reports the prefix and key count of every source.
func (c *Catalog) Sources() ([]SourceInfo, error) {
	result := make([]SourceInfo, 0, len(c.sources))
	for _, source := range c.sources {
		keys, err := source.Keys()
		if err != nil {
			return nil, err
		}
		result = append(result, SourceInfo{Prefix: source.Prefix(), Count: len(keys)})
	}
	return result, nil
}
