// Package tool maps Fluxor service/method pairs to canonical MCP tool names
// (icon/search <-> icon-search) and back.
package tool
