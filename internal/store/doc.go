// Package store provides SQLite-backed durable storage for habits and
// completion records.
//
// Store implements the habit.Storage collaborator: the registry loads its
// state from here at startup and persists every mutation through it. The
// database assumes a single writer; see Open for the pragma configuration.
package store
