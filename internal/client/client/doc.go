// Package client bootstraps the local persistence of the catalog CLI.
//
// InitDatabase opens a pure-Go SQLite database (modernc.org/sqlite), applies
// the embedded goose migrations from internal/client/migrations and returns
// the repositories built on it. The key/value repository is the persistent
// string store the record store mirrors itself to.
package client
