// Package action exposes the icon catalog as a Fluxor action service named
// "icon". Each method becomes an MCP tool (icon-list, icon-search,
// icon-common, icon-sources) and can be called from workflows.
package action
