// File: iterator_test.go
// Title: Tests for the Checked Iterator
// Description: Covers iteration, bounded movement, in-place writes, and the
//              staleness detection that fires after reshaping mutations.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-06
// Modified: 2026-08-06
//
// Change History:
// - 2026-08-06 v0.1.0: Initial implementation

package text

import (
	"testing"

	texterror "github.com/htiek/text/core/error"
)

func collect(t *testing.T, v *Value) string {
	t.Helper()
	var out []byte
	for it := v.Begin(); ; {
		done, err := it.AtEnd()
		if err != nil {
			t.Fatalf("AtEnd() unexpected error: %v", err)
		}
		if done {
			break
		}
		ch, err := it.Current()
		if err != nil {
			t.Fatalf("Current() unexpected error: %v", err)
		}
		out = append(out, ch)
		if err := it.Next(); err != nil {
			t.Fatalf("Next() unexpected error: %v", err)
		}
	}
	return string(out)
}

func TestIteratorWalk(t *testing.T) {
	v := FromString("abc")
	if got := collect(t, &v); got != "abc" {
		t.Errorf("walk = %q; want %q", got, "abc")
	}

	empty := FromString("")
	if got := collect(t, &empty); got != "" {
		t.Errorf("walk of empty = %q; want %q", got, "")
	}
}

func TestIteratorBounds(t *testing.T) {
	v := FromString("ab")

	it := v.End()
	if _, err := it.Current(); err == nil {
		t.Error("Current() at end expected error, got nil")
	}
	if err := it.Next(); err == nil {
		t.Error("Next() past end expected error, got nil")
	}
	if pos, err := it.Pos(); err != nil || pos != 2 {
		t.Errorf("Pos() = %d, %v after failed Next; want 2, nil", pos, err)
	}

	it = v.Begin()
	if err := it.Prev(); err == nil {
		t.Error("Prev() before begin expected error, got nil")
	}
	if err := it.Advance(2); err != nil {
		t.Errorf("Advance(2) to end unexpected error: %v", err)
	}
	if err := it.Advance(-2); err != nil {
		t.Errorf("Advance(-2) back to begin unexpected error: %v", err)
	}
	if err := it.Advance(3); err == nil {
		t.Error("Advance(3) expected error, got nil")
	}
	if pos, err := it.Pos(); err != nil || pos != 0 {
		t.Errorf("Pos() = %d, %v after failed Advance; want 0, nil", pos, err)
	}
}

func TestIteratorStaleAfterReshape(t *testing.T) {
	reshape := []struct {
		name   string
		mutate func(v *Value) error
	}{
		{name: "insert", mutate: func(v *Value) error { return v.Insert(0, Char('x')) }},
		{name: "remove", mutate: func(v *Value) error { return v.Remove(0) }},
		{name: "append", mutate: func(v *Value) error { v.Append(Char('x')); return nil }},
		{name: "trim", mutate: func(v *Value) error { v.Trim(); return nil }},
		{name: "replace", mutate: func(v *Value) error { _, err := v.ReplaceAll(Char('a'), Char('b')); return err }},
		{name: "clamped remove", mutate: func(v *Value) error { return v.RemoveN(3, 100) }},
	}

	for _, tt := range reshape {
		t.Run(tt.name, func(t *testing.T) {
			v := FromString("abc")
			it := v.Begin()
			if err := tt.mutate(&v); err != nil {
				t.Fatalf("mutation failed: %v", err)
			}

			_, err := it.Current()
			if err == nil {
				t.Fatal("Current() on stale iterator expected error, got nil")
			}
			if !texterror.HasCode(err, texterror.CodeInvalidIterator) {
				t.Errorf("stale code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
			}
			if err := it.Next(); !texterror.HasCode(err, texterror.CodeInvalidIterator) {
				t.Errorf("Next() stale code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
			}
			if _, err := it.AtEnd(); !texterror.HasCode(err, texterror.CodeInvalidIterator) {
				t.Errorf("AtEnd() stale code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
			}
			if _, err := it.Pos(); !texterror.HasCode(err, texterror.CodeInvalidIterator) {
				t.Errorf("Pos() stale code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
			}
			if _, err := it.EqualTo(v.Begin()); !texterror.HasCode(err, texterror.CodeInvalidIterator) {
				t.Errorf("EqualTo() stale code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
			}
		})
	}
}

func TestEqualToStaleOperand(t *testing.T) {
	// Staleness of either side poisons the comparison
	v := FromString("abc")
	stale := v.Begin()
	v.Append(Char('x'))
	fresh := v.Begin()

	_, err := fresh.EqualTo(stale)
	if err == nil {
		t.Fatal("EqualTo() with stale operand expected error, got nil")
	}
	if !texterror.HasCode(err, texterror.CodeInvalidIterator) {
		t.Errorf("EqualTo() stale operand code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
	}
}

func TestIteratorSurvivesNoOpReplace(t *testing.T) {
	v := FromString("abc")
	it := v.Begin()

	count, err := v.ReplaceAll(Char('z'), Char('y'))
	if err != nil {
		t.Fatalf("ReplaceAll() unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("ReplaceAll() count = %d; want 0", count)
	}

	ch, err := it.Current()
	if err != nil {
		t.Fatalf("Current() after no-op replace unexpected error: %v", err)
	}
	if ch != 'a' {
		t.Errorf("Current() = %q; want %q", ch, 'a')
	}
}

func TestIteratorSurvivesInPlaceWrites(t *testing.T) {
	v := FromString("abc")
	it := v.Begin()

	if err := v.SetAt(0, 'X'); err != nil {
		t.Fatalf("SetAt() unexpected error: %v", err)
	}
	v.ToUpper()
	v.ToLower()

	ch, err := it.Current()
	if err != nil {
		t.Fatalf("Current() after in-place writes unexpected error: %v", err)
	}
	if ch != 'x' {
		t.Errorf("Current() = %q; want %q", ch, 'x')
	}
}

func TestIteratorSet(t *testing.T) {
	v := FromString("abc")
	it := v.Begin()
	if err := it.Next(); err != nil {
		t.Fatalf("Next() unexpected error: %v", err)
	}
	if err := it.Set('X'); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if v.String() != "aXc" {
		t.Errorf("String() = %q after Set; want %q", v.String(), "aXc")
	}

	end := v.End()
	if err := end.Set('x'); err == nil {
		t.Error("Set() at end expected error, got nil")
	}
}

func TestIteratorEqualTo(t *testing.T) {
	v := FromString("ab")
	w := FromString("ab")

	a := v.Begin()
	b := v.Begin()
	if eq, err := a.EqualTo(b); err != nil || !eq {
		t.Errorf("EqualTo() at same position = %t, %v; want true, nil", eq, err)
	}
	if err := b.Next(); err != nil {
		t.Fatalf("Next() unexpected error: %v", err)
	}
	if eq, err := a.EqualTo(b); err != nil || eq {
		t.Errorf("EqualTo() at different positions = %t, %v; want false, nil", eq, err)
	}
	if eq, err := a.EqualTo(w.Begin()); err != nil || eq {
		t.Errorf("EqualTo() across values = %t, %v; want false, nil", eq, err)
	}

	e := v.End()
	if err := a.Advance(2); err != nil {
		t.Fatalf("Advance() unexpected error: %v", err)
	}
	if eq, err := a.EqualTo(e); err != nil || !eq {
		t.Errorf("EqualTo(End()) after advancing to end = %t, %v; want true, nil", eq, err)
	}
}

func TestZeroIterator(t *testing.T) {
	var it Iterator
	_, err := it.Current()
	if err == nil {
		t.Fatal("Current() on zero iterator expected error, got nil")
	}
	if !texterror.HasCode(err, texterror.CodeInvalidIterator) {
		t.Errorf("zero iterator code = %v; want %v", texterror.GetCode(err), texterror.CodeInvalidIterator)
	}
}
