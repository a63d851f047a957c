// Package conv provides small helpers to coerce loosely typed tool and
// workflow arguments (maps, foreign structs) into the typed inputs and
// outputs of the icon actions.
package conv
