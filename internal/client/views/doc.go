// Package views computes read-time projections of the store contents:
// filters, sorts, counts, day buckets, weekly roll-ups and firm joins.
// Nothing here mutates or persists state.
package views
