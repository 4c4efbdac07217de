// Package result provides Result, a value type holding either a
// success payload or an error payload. It is used where the failure
// side is a domain value rather than an error interface, so producers
// must commit to exactly one of the two cases and consumers must
// inspect or extract explicitly.
//
// A Result is constructed with Ok or Err and consumed either through
// the comma-ok accessors, which never panic, or through the extraction
// methods, which treat the wrong variant as a contract violation and
// abort through the panics package:
//
//	func lookup(key string) result.Result[int, LookupError] {
//		if v, found := table[key]; found {
//			return result.Ok[LookupError](v)
//		}
//		return result.Err[int](ErrNotFound)
//	}
//
//	v := lookup("answer").UnwrapOrElse(func(e LookupError) int {
//		return 0
//	})
package result

import "github.com/partite-ai/obcgo/panics"

// Unit is the zero-sized success payload for operations that can fail
// but produce no value, e.g. Result[Unit, Errno].
type Unit struct{}

// Result holds exactly one of a T payload (the ok variant) or an E
// payload (the err variant). The inactive field is always the zero
// value of its type. The zero Result is an err variant holding E's zero
// value.
//
// Result is a plain value: copying and assigning it copies or replaces
// the payload wholesale. It provides no internal synchronization.
type Result[T, E any] struct {
	ok   T
	err  E
	isOK bool
}

// Ok constructs an ok-variant Result from value. The error type
// parameter is listed first so only it needs to be spelled at the call
// site:
//
//	result.Ok[ParseError](42)
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{ok: value, isOK: true}
}

// Err constructs an err-variant Result from err. The success type
// parameter is listed first, symmetric to Ok:
//
//	result.Err[int](ErrBadInput)
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether r holds the success payload.
func (r Result[T, E]) IsOk() bool {
	return r.isOK
}

// IsErr reports whether r holds the error payload.
func (r Result[T, E]) IsErr() bool {
	return !r.isOK
}

// Ok returns the success payload when present. It never panics.
func (r Result[T, E]) Ok() (T, bool) {
	return r.ok, r.isOK
}

// Err returns the error payload when present. It never panics.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.isOK
}

// Unwrap returns the success payload. If r is the err variant, Unwrap
// aborts through the panics package and does not return.
func (r Result[T, E]) Unwrap() T {
	if !r.isOK {
		panics.Panic("unwrap")
	}
	return r.ok
}

// UnwrapErr returns the error payload. If r is the ok variant,
// UnwrapErr aborts through the panics package and does not return.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOK {
		panics.Panic("unwrap_err")
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied message, so the abort
// diagnostic names what the caller was assuming rather than the generic
// "unwrap".
func (r Result[T, E]) Expect(msg string) T {
	if !r.isOK {
		panics.Panic(msg)
	}
	return r.ok
}

// UnwrapOrElse returns the success payload when present, otherwise the
// value produced by applying fallback to the error payload. fallback
// must always produce a T; this is the only extraction that cannot
// abort.
func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if r.isOK {
		return r.ok
	}
	return fallback(r.err)
}
