/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package schema

// Result holds either a value of T or a non-empty list of errors of type E, modeling the
// "no short-circuit" Result<T, Vec<Error>> the validation passes return at every independent unit
// (spec.md §9's "error accumulation idiom"). E is left generic rather than pinned to *Error so that
// a pass's own located, structured error type (e.g. package validate's located SchemaError) can flow
// through the same combinator. A zero Result is a zero-value Ok.
type Result[T, E any] struct {
	Value  T
	Errors []E
}

// Ok constructs a successful Result.
func Ok[T, E any](value T) Result[T, E] { return Result[T, E]{Value: value} }

// Err constructs a failed Result.
func Err[T, E any](errs ...E) Result[T, E] { return Result[T, E]{Errors: errs} }

// IsOk reports whether r carries no errors.
func (r Result[T, E]) IsOk() bool { return len(r.Errors) == 0 }

// CollectResults is "collect all Ok or return all Err": it evaluates every element of items
// independently (no short-circuiting — every element runs even after an earlier one failed) and
// either returns every transformed value, in order, or the concatenation of every error any element
// produced.
func CollectResults[T, U, E any](items []T, f func(T) Result[U, E]) Result[[]U, E] {
	values := make([]U, 0, len(items))
	var errs []E
	for _, item := range items {
		r := f(item)
		if !r.IsOk() {
			errs = append(errs, r.Errors...)
			continue
		}
		values = append(values, r.Value)
	}
	if len(errs) > 0 {
		return Err[[]U, E](errs...)
	}
	return Ok[[]U, E](values)
}

// CollectResultsFlat is the flattened variant of CollectResults: each element of items maps to a
// value slot plus an independent list of errors, which are concatenated flat into the aggregate
// failure rather than nested (spec.md §9: "the variant where each error slot is itself an iterator
// of errors, flattened").
func CollectResultsFlat[T, U, E any](items []T, f func(T) ([]U, []E)) Result[[]U, E] {
	values := make([]U, 0, len(items))
	var errs []E
	for _, item := range items {
		vs, es := f(item)
		if len(es) > 0 {
			errs = append(errs, es...)
			continue
		}
		values = append(values, vs...)
	}
	if len(errs) > 0 {
		return Err[[]U, E](errs...)
	}
	return Ok[[]U, E](values)
}
