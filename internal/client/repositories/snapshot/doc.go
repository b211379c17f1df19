// Package snapshot is the storage port of the local persistent store.
//
// A snapshot is one JSON document keyed by collection name (see
// models.Persisted). The store loads it once at startup and saves it whole
// after every local mutation; nothing here patches individual records.
//
// Implementations:
//
//   - SQLiteRepository: one row per top-level key in an SQLite database
//     migrated with goose; Save replaces every row in a single transaction.
//   - FileRepository: a single JSON file written atomically.
//   - MemoryRepository: an in-process byte buffer for tests.
//
// Load returns ErrNoSnapshot when nothing was ever saved and another error when
// the stored document cannot be decoded; the store treats both as "start
// empty".
package snapshot
