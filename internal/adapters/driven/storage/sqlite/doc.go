// Package sqlite persists the closed-tab journal in a local SQLite database.
//
// The browser's DevTools endpoint has no sessions API, so tabfind records
// tabs itself as they are destroyed and serves them back as the
// "Recently closed" source. Restoring an entry pops it from the journal.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.tabfind/data/journal.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on SQLite's
// WAL mode and busy timeout for locking.
package sqlite
