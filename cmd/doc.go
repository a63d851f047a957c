// Package cmd implements the sub-commands of the iconset command-line
// interface. Each file registers a single sub-command (list, search, serve,
// ...). Plumbing shared between commands such as configuration loading or
// service initialisation lives in shared.go.
package cmd
