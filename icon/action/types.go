package action

import "github.com/viant/iconset-mcp/icon"

// ListInput selects icons from the full catalog.
type ListInput struct {
	Prefix string `json:"prefix,omitempty" description:"icon set prefix to keep, e.g. mdi"`
	Limit  int    `json:"limit,omitempty" description:"maximum number of icons, 0 uses the service default"`
}

// SearchInput carries a substring query matched against icon keys.
type SearchInput struct {
	Query string `json:"query" description:"case-insensitive substring of the icon key"`
	Limit int    `json:"limit,omitempty" description:"maximum number of icons, 0 uses the service default"`
}

// IconsOutput lists catalog records.
type IconsOutput struct {
	Icons []icon.Record `json:"icons"`
}

type CommonInput struct{}

// CommonOutput lists curated icon names.
type CommonOutput struct {
	Icons []string `json:"icons"`
}

type SourcesInput struct{}

// SourcesOutput describes configured icon sets.
type SourcesOutput struct {
	Sources []icon.SourceInfo `json:"sources"`
}
