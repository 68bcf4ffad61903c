// Package client bootstraps local persistence for the glitterpage CLI.
//
// InitDatabase opens the SQLite file, applies the embedded goose migrations
// (RunMigrations) and wires the durable store and every entity repository
// on top of it. The returned Repositories owns the *sql.DB and must be
// closed by the caller.
package client
