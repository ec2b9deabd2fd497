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

import "github.com/botobag/isoschema/token"

// WithSpan pairs a value with a byte-range inside a text source. Parsers attach one to every name,
// type annotation and selection they produce so that later passes never have to thread position
// information through side-channel parameters.
type WithSpan[T any] struct {
	Item T
	Span token.Span
}

// NewWithSpan wraps item with the given span.
func NewWithSpan[T any](item T, span token.Span) WithSpan[T] {
	return WithSpan[T]{Item: item, Span: span}
}

// MapSpan transforms the wrapped item with f, preserving the span.
func MapSpan[T, U any](w WithSpan[T], f func(T) U) WithSpan[U] {
	return WithSpan[U]{Item: f(w.Item), Span: w.Span}
}

// WithLocation pairs a value with a (text-source-id, span) location, i.e. a WithSpan further
// qualified by which source the span lives in. Use WithLocation wherever a value must be locatable
// independent of the WithSpan-carrying node it was found in — in particular, on every error.
type WithLocation[T any] struct {
	Item     T
	Source   token.TextSourceId
	Location token.Span
}

// NewWithLocation wraps item with the given source and span.
func NewWithLocation[T any](item T, source token.TextSourceId, span token.Span) WithLocation[T] {
	return WithLocation[T]{Item: item, Source: source, Location: span}
}

// WithLocationOf attaches a WithSpan's span to the given source, producing a WithLocation that
// carries the same item.
func WithLocationOf[T any](source token.TextSourceId, w WithSpan[T]) WithLocation[T] {
	return WithLocation[T]{Item: w.Item, Source: source, Location: w.Span}
}

// MapLocation transforms the wrapped item with f, preserving the source and span.
func MapLocation[T, U any](w WithLocation[T], f func(T) U) WithLocation[U] {
	return WithLocation[U]{Item: f(w.Item), Source: w.Source, Location: w.Location}
}

// Before reports whether w sorts strictly before other by (Source, Location.Start, Location.End).
// Used to give the error vector a deterministic, source-discovery-like ordering regardless of which
// pass or goroutine produced each error (spec.md §5's "may internally parallelize" allowance).
func (w WithLocation[T]) Before(other WithLocation[T]) bool {
	if w.Source != other.Source {
		return w.Source < other.Source
	}
	if w.Location.Start != other.Location.Start {
		return w.Location.Start < other.Location.Start
	}
	return w.Location.End < other.Location.End
}
