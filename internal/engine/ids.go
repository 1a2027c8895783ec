package engine

import "sync/atomic"

// nextID is the process-wide creation counter shared by all graphs.
var nextID atomic.Uint64

// newID returns the next creation-order id.
func newID() uint64 {
	return nextID.Add(1) - 1
}

// ResetIDs restarts the process-wide node id counter at zero.
//
// Ids only order nodes for diagnostics and deterministic iteration; they never
// influence gradients. Tests call this to get reproducible ids.
func ResetIDs() {
	nextID.Store(0)
}

// PeekID returns the id the next created node will receive.
func PeekID() uint64 {
	return nextID.Load()
}
