// Package cli provides the interactive glitterpage command-line client.
//
// It wires configuration, local storage, the entity services and the
// generative-text collaborator behind a small REPL. Image uploads, chat
// replies and status generation run in the background; their results are
// printed when they arrive.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// and then waits for outstanding background work before closing storage.
// See App and runREPL for details.
package cli
