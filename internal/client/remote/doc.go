// Package remote talks to the shared document store and file storage that
// back the question banks, resources and notifications.
//
// The local store only caches these collections. After every successful
// create, update or delete the whole collection is fetched again and written
// to the cache, so server-assigned ids and timestamps are never guessed.
package remote
