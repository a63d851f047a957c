// Package mcp wires the icon catalog into a Fluxor workflow engine and
// exposes every Fluxor action, the icon actions first among them, as MCP
// tools. Its central Service type loads icon sources, builds the runtime and
// serves the tool registry over an MCP server.
package mcp
