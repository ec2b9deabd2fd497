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

package schema_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botobag/isoschema/schema"
)

func annotations(t *testing.T) []schema.TypeAnnotation[string] {
	t.Helper()
	return []schema.TypeAnnotation[string]{
		schema.Named("Foo", true),
		schema.Named("Foo", false),
		schema.List(schema.Named("Bar", true), true),
		schema.List(schema.Named("Bar", false), false),
		schema.List(schema.List(schema.Named("Baz", true), false), true),
	}
}

func TestTypeAnnotationMapIdentityLaw(t *testing.T) {
	for _, ann := range annotations(t) {
		mapped := schema.Map(ann, func(s string) string { return s })
		assert.Equal(t, ann.String(), mapped.String())
		assert.Equal(t, ann.Inner(), mapped.Inner())
	}
}

func TestTypeAnnotationMapCompositionLaw(t *testing.T) {
	toLen := func(s string) int { return len(s) }
	double := func(n int) int { return n * 2 }

	for _, ann := range annotations(t) {
		composed := schema.Map(ann, func(s string) int { return double(toLen(s)) })
		sequential := schema.Map(schema.Map(ann, toLen), double)

		require.Equal(t, composed.IsList(), sequential.IsList())
		assert.Equal(t, composed.Inner(), sequential.Inner())
	}
}

func TestTypeAnnotationStringRendersListAndNonNull(t *testing.T) {
	assert.Equal(t, "Foo", schema.Named("Foo", true).String())
	assert.Equal(t, "Foo!", schema.Named("Foo", false).String())
	assert.Equal(t, "[Foo]", schema.List(schema.Named("Foo", true), true).String())
	assert.Equal(t, "[Foo!]!", schema.List(schema.Named("Foo", false), false).String())
}

func TestTypeAnnotationMapPreservesNesting(t *testing.T) {
	ann := schema.List(schema.List(schema.Named(3, true), false), true)
	mapped := schema.Map(ann, strconv.Itoa)

	require.True(t, mapped.IsList())
	require.True(t, mapped.ListElement().IsList())
	assert.Equal(t, "3", mapped.ListElement().ListElement().Inner())
}
