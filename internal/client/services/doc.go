// Package services contains the mutation dispatcher: the single entry point
// for every create, update and delete issued by the UI.
//
// Local collections are mutated synchronously through the store. Remote
// collections go through the remote adapter, which refetches the collection
// before the call returns. Creates are gated on a signed-in identity; a
// rejected create returns common.ErrUnauthenticated, changes nothing and
// hands a user-facing warning to the Warner.
package services
