// Package testutil holds shared helpers for exercising the panic paths
// of the module under test.
package testutil

import (
	"testing"

	"github.com/partite-ai/obcgo/panics"
)

// CapturePanic runs fn and returns the *panics.Error it raised, or nil
// if fn returned normally. A panic carrying anything other than a
// *panics.Error is re-raised.
func CapturePanic(fn func()) (captured *panics.Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		pe, ok := r.(*panics.Error)
		if !ok {
			panic(r)
		}
		captured = pe
	}()
	fn()
	return nil
}

// ExpectPanic asserts that fn panics through the panics package with
// exactly the given message.
func ExpectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	pe := CapturePanic(fn)
	if pe == nil {
		t.Fatalf("expected panic with message %q, but call returned", msg)
	}
	if pe.Msg != msg {
		t.Fatalf("expected panic message %q, got %q", msg, pe.Msg)
	}
}

// ExpectNoPanic asserts that fn returns normally.
func ExpectNoPanic(t *testing.T, fn func()) {
	t.Helper()
	if pe := CapturePanic(fn); pe != nil {
		t.Fatalf("unexpected panic: %v", pe)
	}
}
