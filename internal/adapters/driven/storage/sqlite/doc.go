// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It currently backs the HistoryStore,
// which records every calculator evaluation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in the schema_migrations table.
//
// # Data Location
//
// By default, the database is stored at $DRILLS_HOME/data/history.db, falling
// back to ~/.drills/data/history.db.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
