// Package text provides a safe, value-semantics string type.
//
// Package: text
// Title: Safe Value-Semantics Text Type
// Description: This package implements an owning, mutable text value (Value)
//              built over a growable byte buffer, a non-owning read-only view
//              (View) that unifies everything "text-like" at call boundaries,
//              mutation-checked iterators that detect use after their source
//              changed, and a generic conversion framework (To/From/Is) with
//              radix-aware integer parsing. All operations work on 8-bit code
//              units; case conversion and classification are ASCII-only.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-05
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-05 v0.1.0: Initial implementation of View, Value, and iterators
// - 2026-08-12 v0.1.1: Conversion framework and URL coding
//
// Overview
//
// Value replaces raw string handling where every operation validates its
// arguments and reports failures as structured errors (core/error codes)
// instead of panicking or silently truncating. Views are built at call sites
// from any accepted text source:
//
//   v := text.FromString("hello world")
//   pos := v.Find(text.Str("world"))          // 6
//   _ = v.Insert(5, text.Char(','))           // "hello, world"
//
// Numeric scalars are not text: there is deliberately no View constructor
// accepting an int or a float, so the classic errors of passing a count
// where text was meant are caught by the compiler.
//
// Iterators are bound to a mutation counter owned by their Value. Any
// structural mutation (insert, remove, append, trim, replace-all) bumps the
// counter; a cursor obtained before the mutation fails with an
// INVALID_ITERATOR error on its next use rather than reading stale bytes.
//
// The conversion framework converts between Value and Go types:
//
//   n, err := text.To[int](v)                 // strict whole-input parse
//   b := text.From(true)                      // "true"
//   ok := text.Is[float64](v)                 // non-raising probe
//   m, err := text.ToRadix[int](v, 16)        // digits of the given radix only
package text
