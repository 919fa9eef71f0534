// Package idgen produces the opaque handles the registry assigns to sessions.
// Handles are UUIDs; NewFunc can be replaced in tests for determinism.
package idgen
