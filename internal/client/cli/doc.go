// Package cli provides the interactive tracker command-line client.
//
// It wires configuration, the local snapshot, the optional shared store and
// an interactive REPL. Local collections (firms, coffee chats and the rest)
// work without any network; question banks, resources and notifications
// need a remote DSN.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
