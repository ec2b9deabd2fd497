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

// InputValueDefinition is a located argument declaration on a server field, generic over its type
// payload the same way ServerField is: A is TypeAnnotation[UnvalidatedTypeName] pre-resolution and
// TypeAnnotation[SelectableFieldId] post-resolution.
type InputValueDefinition[A any] struct {
	Name WithLocation[string]
	Type A
}

// MapInputValueDefinition rebuilds arg with its type payload replaced by applying f, preserving the
// located name.
func MapInputValueDefinition[A, B any](arg InputValueDefinition[A], f func(A) B) InputValueDefinition[B] {
	return InputValueDefinition[B]{Name: arg.Name, Type: f(arg.Type)}
}

// ServerField is SchemaServerField<A> from spec.md §3: a field declared in source and resolved by
// the backing server, generic over its own declared-type payload A (the one spec-sanctioned
// generic-payload slot on a higher-level entity; unlike Object or ClientField, a server field's
// pre/post-validation difference is exactly one TypeAnnotation swap, so a single type parameter
// models it precisely without reaching for a stage tag).
type ServerField[A any] struct {
	Description string
	Name        WithLocation[string]
	ParentId    ObjectId
	Arguments   []InputValueDefinition[A]
	Type        A

	id ServerFieldId
}

// Id returns the field's own id.
func (f *ServerField[A]) Id() ServerFieldId { return f.id }

// UnvalidatedServerField is a ServerField before pass A has resolved its declared type and argument
// types: A = TypeAnnotation[UnvalidatedTypeName].
type UnvalidatedServerField = ServerField[TypeAnnotation[UnvalidatedTypeName]]

// ValidatedServerField is a ServerField after pass A: A = TypeAnnotation[SelectableFieldId].
type ValidatedServerField = ServerField[TypeAnnotation[SelectableFieldId]]
