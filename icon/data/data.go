// Package data bundles the default icon-set documents, embedded at build time.
package data

import (
	_ "embed"

	"github.com/viant/iconset-mcp/icon"
)

const (
	PrefixMDI             = "mdi"
	PrefixMaterialSymbols = "material-symbols"
	PrefixFluent          = "fluent"
)

//go:embed mdi.json
var MDIJSON []byte

//go:embed material-symbols.json
var MaterialSymbolsJSON []byte

//go:embed fluent.json
var FluentJSON []byte

// Sources returns the bundled icon sets in catalog order.
func Sources() []icon.Source {
	return []icon.Source{
		icon.NewIconifySource(PrefixMDI, MDIJSON),
		icon.NewIconifySource(PrefixMaterialSymbols, MaterialSymbolsJSON),
		icon.NewIconifySource(PrefixFluent, FluentJSON),
	}
}
