// Package icon aggregates icon names from several icon-set sources into a
// single ordered catalog and offers a case-insensitive substring search over
// the bare icon keys. Sources are injected by the caller; the catalog keeps no
// state of its own and rebuilds the record list on every call.
package icon
