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

// Package schema models a client-side GraphQL-style schema at every stage of validation: the raw,
// textual-typed entities a parser produces (UnvalidatedSchema and its Unvalidated* entities), and
// the fully resolved, id-typed entities a validate/construct pass produces (ValidatedSchema and its
// Validated* entities). It owns no parsing and no artifact generation; see package validate for the
// passes that turn one stage into the other.
package schema

// UnvalidatedSchema is the input to a validate-and-construct call: an id-issuing store already
// populated with objects, scalars, server fields and client fields in their unvalidated, textual
// shapes (spec.md §6's "consumed collaborator interfaces").
type UnvalidatedSchema struct {
	Data *UnvalidatedData
}

// ValidatedSchema is the output of a successful validate-and-construct call (spec.md §6's "produced
// collaborator interfaces"): every server field's and client field's type payload has been resolved
// to ids, every client field's selection tree has been classified, and every object's encountered
// fields map has been reindexed to FieldDefinitionLocation values.
type ValidatedSchema struct {
	Data *ValidatedData

	// Entrypoints lists the ClientFieldId each registered entrypoint resolved to, in the same order
	// UnvalidatedData.Entrypoints declared them.
	Entrypoints []ClientFieldId
}
