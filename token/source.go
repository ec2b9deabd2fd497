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

// Package token carries source positions for the schema validator. It is adapted from the
// teacher's graphql/token package: instead of indexing into a single parsed GraphQL document, a
// TextSourceId distinguishes which of potentially many source files (schema file, client field
// file) a Span belongs to, since a validated schema is assembled from several independently parsed
// sources.
package token

// TextSourceId identifies one of the (possibly many) textual sources that contributed definitions
// to a schema. It is opaque and only meaningful for equality/ordering and for looking up display
// metadata about the source (e.g. its file path) via a TextSource registry kept by the caller.
type TextSourceId uint32

// NoTextSource is a TextSourceId that doesn't correspond to any known source. Generated or
// synthetic entities (e.g. built-in scalars) may carry it.
const NoTextSource TextSourceId = 0

// Offset is a byte offset within a text source.
type Offset uint32

// Span is a half-open byte range [Start, End) within a TextSourceId's content.
type Span struct {
	Start Offset
	End   Offset
}

// IsValid reports whether the span describes a well-formed range (Start not after End). An empty
// span, with Start equal to End, is valid.
func (s Span) IsValid() bool {
	return s.Start <= s.End
}

// LocationInfo is a (line, column) pair, both 1-indexed, suitable for user-facing error output.
type LocationInfo struct {
	Line   uint
	Column uint
}

// Source pairs raw textual content with the id it's registered under, and knows how to translate a
// byte Offset into a LocationInfo. This mirrors graphql.Source / token.SourceLocation in the
// teacher, generalized to multiple sources instead of one per parse.
type Source struct {
	ID   TextSourceId
	Name string
	Body string
}

// LocationInfoOf computes the line/column for a byte offset within the source body.
func (s *Source) LocationInfoOf(offset Offset) LocationInfo {
	var (
		line   uint = 1
		column uint = 1
	)

	limit := int(offset)
	if limit > len(s.Body) {
		limit = len(s.Body)
	}

	for i := 0; i < limit; i++ {
		if s.Body[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return LocationInfo{Line: line, Column: column}
}
