// Package cli provides the interactive catalog command-line client.
//
// It wires configuration, the local sqlite store, the catalog service and an
// interactive REPL. Typical flow: load the persisted list (or the seed),
// print it, then execute user commands until exit.
//
// Key features:
//   - List products in a table
//   - Add / Edit through field-by-field prompts, or set fields one at a time
//   - Show the draft with its validation errors
//   - Delete with confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and terminalPresenter for details.
package cli
