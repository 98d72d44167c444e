// File: version.go
// Title: Mutation Version Tracking
// Description: Implements the monotonic mutation counter owned by every
//              Value. Structural mutators bump it; iterators record the
//              counter at creation and compare against the live value on
//              every access to detect staleness.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-05
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation

package text

// versionTracker is a monotonically increasing mutation counter. It is owned
// exclusively by its Value and only ever bumped by that Value's structural
// mutators. Read-only queries and single-byte overwrites via SetAt leave it
// untouched.
type versionTracker struct {
	count uint64
}

// bump records one structural mutation
func (t *versionTracker) bump() {
	t.count++
}

// current returns the live counter value
func (t *versionTracker) current() uint64 {
	return t.count
}
