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

import "fmt"

// TypeAnnotation is a recursive structure over an inner payload N, representing GraphQL's four
// nullability/list combinations: Named, [Named], Named!, [Named]!. It is generic so that the same
// shape serves both pre-resolution textual names (TypeAnnotation[UnvalidatedTypeName]) and
// post-resolution ids (TypeAnnotation[SelectableFieldId]) — see list.go / non_null.go in the
// teacher for the runtime-type analog this is modeled on, generalized here to a pure algebraic
// value instead of a pair of executable Type implementations.
type TypeAnnotation[N any] struct {
	// kind distinguishes Named from List; List annotations ignore named/use listElement instead.
	kind     typeAnnotationKind
	nullable bool

	named        N
	listElement  *TypeAnnotation[N]
}

type typeAnnotationKind uint8

const (
	namedAnnotation typeAnnotationKind = iota
	listAnnotation
)

// Named constructs a TypeAnnotation directly wrapping n. nullable controls whether the annotation
// renders with a trailing "!".
func Named[N any](n N, nullable bool) TypeAnnotation[N] {
	return TypeAnnotation[N]{kind: namedAnnotation, named: n, nullable: nullable}
}

// List constructs a TypeAnnotation wrapping another TypeAnnotation as its element type. nullable
// controls whether the list itself (not its element) renders with a trailing "!".
func List[N any](element TypeAnnotation[N], nullable bool) TypeAnnotation[N] {
	return TypeAnnotation[N]{kind: listAnnotation, listElement: &element, nullable: nullable}
}

// IsList reports whether the annotation is a list wrapper.
func (t TypeAnnotation[N]) IsList() bool { return t.kind == listAnnotation }

// Nullable reports whether this specific layer (the list or the name) is nullable.
func (t TypeAnnotation[N]) Nullable() bool { return t.nullable }

// ListElement returns the element annotation of a list annotation. It panics if called on a Named
// annotation; callers should check IsList first.
func (t TypeAnnotation[N]) ListElement() TypeAnnotation[N] {
	if t.kind != listAnnotation {
		panic("schema: ListElement called on a Named TypeAnnotation")
	}
	return *t.listElement
}

// Inner returns the innermost named payload, skipping all list/nullable wrappers.
func (t TypeAnnotation[N]) Inner() N {
	for t.kind == listAnnotation {
		t = *t.listElement
	}
	return t.named
}

// Map rebuilds the wrappers of t, applying f once to the single leaf payload. Map is a functor:
// Map(id) behaves as the identity, and Map(f) then Map(g) equals Map(g∘f) (spec.md §4.1, §8).
func Map[N, M any](t TypeAnnotation[N], f func(N) M) TypeAnnotation[M] {
	if t.kind == listAnnotation {
		element := Map(*t.listElement, f)
		return TypeAnnotation[M]{kind: listAnnotation, nullable: t.nullable, listElement: &element}
	}
	return TypeAnnotation[M]{kind: namedAnnotation, nullable: t.nullable, named: f(t.named)}
}

// stringer is implemented by payloads that know how to render themselves in type-annotation
// syntax (e.g. UnvalidatedTypeName, or a SelectableFieldId resolved back to a name via the store).
type stringer interface {
	String() string
}

// String renders the annotation using standard GraphQL list/non-null syntax: T, [T], T!, [T]!.
// N must implement fmt.Stringer (or be a string) for this to produce a sensible name.
func (t TypeAnnotation[N]) String() string {
	var inner string
	if t.kind == listAnnotation {
		inner = "[" + t.listElement.String() + "]"
	} else {
		inner = stringOf(t.named)
	}
	if !t.nullable {
		inner += "!"
	}
	return inner
}

func stringOf[N any](n N) string {
	if s, ok := any(n).(stringer); ok {
		return s.String()
	}
	if s, ok := any(n).(string); ok {
		return s
	}
	return fmt.Sprintf("%v", n)
}
