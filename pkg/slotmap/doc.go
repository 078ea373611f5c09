// Package slotmap provides an ordered arena addressed by generational keys.
//
// Every entry lives in a slot of a growable table. Removing an entry frees
// its slot for reuse and bumps the slot generation, so a key held for a
// removed entry can never reach whatever is stored there later. Removal is
// O(1) and never moves or invalidates the keys of other entries.
//
// Traversal (Keys, All) always follows insertion order: freed slots are
// reused for storage, but ordering is kept by links between slots rather
// than by slot position.
package slotmap
