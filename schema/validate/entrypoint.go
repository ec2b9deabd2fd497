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

	"github.com/botobag/isoschema/schema"
)

// ResolveEntrypoints resolves every registered entrypoint (distilled schema §4.6) against data,
// recording the ClientFieldId each one names. Each entrypoint is resolved independently: a failure
// to resolve one does not stop the rest from being attempted, and every failure is aggregated into
// the returned error list rather than aborting the whole batch.
func ResolveEntrypoints(data *schema.UnvalidatedData) ([]schema.ClientFieldId, []LocatedError) {
	result := schema.CollectResultsFlat(
		data.Entrypoints,
		func(entry schema.WithLocation[schema.EntrypointRef]) ([]schema.ClientFieldId, []LocatedError) {
			obj, ok := objectByName(data, entry.Item.ParentTypeName)
			if !ok {
				err := locate(entry, ErrorValidatingEntrypointDeclaration(fmt.Sprintf(
					"type %q does not exist", entry.Item.ParentTypeName,
				)))
				return nil, []LocatedError{err}
			}
			id, ok := findClientFieldIdByName(obj, entry.Item.FieldName, data)
			if !ok {
				err := locate(entry, ErrorValidatingEntrypointDeclaration(fmt.Sprintf(
					"field %q on type %q is not a client field", entry.Item.FieldName, entry.Item.ParentTypeName,
				)))
				return nil, []LocatedError{err}
			}
			return []schema.ClientFieldId{id}, nil
		},
	)
	return result.Value, result.Errors
}

func objectByName(data *schema.UnvalidatedData, name string) (*schema.UnvalidatedObject, bool) {
	for _, obj := range data.Objects() {
		if obj.Name == name {
			return obj, true
		}
	}
	return nil, false
}
