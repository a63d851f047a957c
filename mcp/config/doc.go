// Package config defines the YAML/JSON configuration model passed to the
// icon service on startup together with helpers to load it from any afs
// location, validate it and apply environment overrides.
package config
