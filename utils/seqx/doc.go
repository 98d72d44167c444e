// Package seqx provides generic ordered-sequence utilities.
//
// Package: seqx
// Title: Sequence Utilities for the Text Library
// Description: This package provides insertion-order-preserving helpers over
//              Go slices, generic over the element type. They are the
//              companion operations for split results and join inputs from
//              the text package: filtering empty tokens, mapping values to
//              strings and back, and folding sequences.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial implementation
//
// Usage:
//   parts, _ := value.Split(text.Char(','))
//   names := seqx.Map(parts, func(v text.Value) string { return v.String() })
package seqx
