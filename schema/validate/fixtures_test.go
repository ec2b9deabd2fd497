/**
 * Copyright (c) 2019, The Artemis Authors.
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

package validate_test

import (
	"github.com/botobag/isoschema/schema"
	"github.com/botobag/isoschema/token"
)

// loc wraps s at a synthetic, sourceless location; none of these specs care about actual byte
// offsets, only about which (Kind, name) pair a produced error carries.
func loc(s string) schema.WithLocation[string] {
	return schema.NewWithLocation(s, token.NoTextSource, token.Span{})
}

func named(name string) schema.TypeAnnotation[schema.UnvalidatedTypeName] {
	return schema.Named(schema.UnvalidatedTypeName(name), true)
}

func scalarSelection(name string) schema.UnvalidatedSelection {
	return schema.UnvalidatedScalarFieldSelection{
		SelectionCommon: schema.SelectionCommon{Name: loc(name)},
	}
}

func linkedSelection(name string, children ...schema.UnvalidatedSelection) schema.UnvalidatedSelection {
	return schema.UnvalidatedLinkedFieldSelection{
		SelectionCommon: schema.SelectionCommon{Name: loc(name)},
		SelectionSet:    children,
	}
}
