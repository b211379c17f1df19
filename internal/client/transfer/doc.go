// Package transfer exports the local store to a single JSON document and
// replaces the local store from one. Import is authoritative: a collection
// missing from the document ends up empty. Clear empties the local store.
package transfer
