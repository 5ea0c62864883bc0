// Package history implements the Bounded History Buffer.
//
// The buffer keeps the N most recent quote readings in insertion order
// with strict FIFO eviction. It is recreated at process start; the
// on-disk snapshot is a derived artifact, never reloaded.
package history
