// Package kv provides the persistent string store the catalog is mirrored to.
//
// The store is a flat key/value map of strings: the record store writes the
// whole JSON-encoded product list under a single version-specific key after
// every change, and reads it back on start-up.
//
// Implementations
//
//   - SQLiteRepository: table "kv" in the local database, over dbx.DBTX
//   - MemoryRepository: map-backed, for tests and throwaway sessions
//
// Get reports absence with found=false and a nil error; only driver failures
// are errors.
package kv
