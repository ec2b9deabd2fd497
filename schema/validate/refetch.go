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

package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/botobag/isoschema/schema"
)

// PathToRefetchField names a selection inside a client field's tree that requires its own network
// fetch to resolve: a nested client field whose variant is RefetchFieldVariant (GLOSSARY: "refetch
// path"). Path holds the selection names from the root of the client field's own selection set down
// to, and including, the refetch-requiring selection.
type PathToRefetchField struct {
	Path []string
}

func (p PathToRefetchField) key() string { return strings.Join(p.Path, ".") }

// RefetchedPathsForClientField returns every refetch path reachable from field's selection set,
// sorted and duplicate-free (distilled schema §8 invariant 6). A client field with no selection set
// (e.g. one with variant RefetchFieldVariant itself, selected only scalarly elsewhere) has none of
// its own.
func RefetchedPathsForClientField(field *schema.ValidatedClientField, store *schema.ValidatedData) []PathToRefetchField {
	var paths []PathToRefetchField
	if field.SelectionSet != nil {
		walkForRefetchPaths(field.SelectionSet.Selections, nil, store, &paths)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i].key() < paths[j].key() })

	deduped := paths[:0]
	var lastKey string
	for i, p := range paths {
		if i == 0 || p.key() != lastKey {
			deduped = append(deduped, p)
			lastKey = p.key()
		}
	}
	return deduped
}

func walkForRefetchPaths(selections []schema.ValidatedSelection, prefix []string, store *schema.ValidatedData, out *[]PathToRefetchField) {
	for _, sel := range selections {
		name := sel.Common().Name.Item
		path := append(append([]string{}, prefix...), name)

		switch sel := sel.(type) {
		case schema.ValidatedScalarFieldSelection:
			if loc, ok := sel.AssociatedData.(schema.ClientFieldLocation); ok {
				if store.ClientField(loc.ClientFieldId).Variant == schema.RefetchFieldVariant {
					*out = append(*out, PathToRefetchField{Path: path})
				}
			}
		case schema.ValidatedLinkedFieldSelection:
			walkForRefetchPaths(sel.SelectionSet, path, store, out)
		default:
			panic(fmt.Sprintf("validate: unknown ValidatedSelection implementation %T", sel))
		}
	}
}
