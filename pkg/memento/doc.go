// Package memento implements the Memento behavioral pattern: an
// Originator exposes save/restore operations that produce and consume
// opaque Snapshot values, and a History stores a sequence of those
// snapshots without ever inspecting or modifying them.
//
// Roles:
//   - Snapshot: immutable capture of a single state value
//   - Originator: owns the mutable state and is the only snapshot producer
//   - History: append-only, order-preserving snapshot container
//
// All operations are synchronous and in-memory. The types hold no locks
// and are not safe for concurrent use.
package memento
