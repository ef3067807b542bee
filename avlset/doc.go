// Package avlset implements an order-statistic AVL tree keyed by a
// caller-supplied comparator, with an arena of nodes addressed by
// integer handles instead of pointers.
//
// The arena layout (left/right/parent as int32 indices into a slice,
// a reserved nilIdx sentinel) avoids cycle-prone pointer graphs and
// keeps nodes contiguous for cache locality, as recommended for this
// kind of intrusive balanced tree in a systems-oriented language.
//
// Tree is used by the 3D hypervolume sweep and the EAF
// sweep to maintain a staircase of points ordered by one coordinate
// while supporting O(log n) neighbour queries and order statistics.
//
// Complexity: Insert/Delete/Find/Next/Prev/Rank/Select are all
// O(log n). The tree rebalances via standard AVL rotations on every
// insert and delete.
//
// Errors:
//
//	ErrHandleNotFound - a Handle does not refer to a live node.
//	ErrEmptyTree      - Min/Max/Select called on an empty tree.
//	ErrIndexOutOfRange - Select index is outside [0, Len()).
package avlset

import "errors"

// Sentinel errors returned by Tree operations.
var (
	// ErrHandleNotFound indicates a Handle no longer refers to a live node.
	ErrHandleNotFound = errors.New("avlset: handle not found")

	// ErrEmptyTree indicates an operation requiring at least one element
	// was called on an empty tree.
	ErrEmptyTree = errors.New("avlset: tree is empty")

	// ErrIndexOutOfRange indicates Select was called with i outside [0, Len()).
	ErrIndexOutOfRange = errors.New("avlset: index out of range")
)

// nilIdx is the reserved sentinel marking "no node" in the arena.
const nilIdx int32 = -1

// Handle identifies a live node within a Tree. A Handle remains valid
// across Insert/Delete/rotations of other nodes; only Delete(h) itself
// invalidates h.
type Handle int32
