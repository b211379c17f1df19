// Package store holds the in-memory table-set of the tracker and keeps the
// durable snapshot in step with it.
//
// Locally scoped collections (firms, coffee chats and the rest) are flushed to
// the snapshot repository on every write. Remote caches (questions, resources,
// notifications) live only in memory and are refilled from the remote store.
package store
