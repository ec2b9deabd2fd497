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

	"github.com/botobag/isoschema/iterator"
	"github.com/botobag/isoschema/schema"
)

// RunPassC rebuilds every object's EncounteredFields map, replacing each name's textual or
// client-marker payload with the FieldDefinitionLocation it actually resolves to (distilled schema
// §4.5, component C7). It runs only once pass A has succeeded and reads nothing pass A or pass B
// produced beyond the original unvalidated objects, server fields and client fields — so it is safe
// to run directly against data even when it's being assembled concurrently with pass B.
//
// A name with neither a matching server field nor a matching client field breaks the invariant that
// every encountered-fields entry resolves to exactly one field (distilled schema §3); that is an
// internal bug, not a user error, so this panics rather than returning an error.
func RunPassC(data *schema.UnvalidatedData) []*schema.ValidatedObject {
	objects := make([]*schema.ValidatedObject, 0, len(data.Objects()))
	it := data.ObjectIterator()
	for {
		obj, err := it.Next()
		if err == iterator.Done {
			break
		}
		reindexed := make(map[string]schema.FieldDefinitionLocation, len(obj.EncounteredFields))
		for name := range obj.EncounteredFields {
			if id, ok := findServerFieldIdByName(obj, name, data); ok {
				reindexed[name] = schema.ServerField(id)
				continue
			}
			if id, ok := findClientFieldIdByName(obj, name, data); ok {
				reindexed[name] = schema.ClientField(id)
				continue
			}
			panic(fmt.Sprintf("validate: encountered field %q on %q resolves to neither a server field nor a client field", name, obj.Name))
		}
		objects = append(objects, &schema.ValidatedObject{
			Description:       obj.Description,
			Name:              obj.Name,
			ServerFieldIds:    obj.ServerFieldIds,
			ClientFieldIds:    obj.ClientFieldIds,
			IdField:           obj.IdField,
			Directives:        obj.Directives,
			EncounteredFields: reindexed,
		})
	}
	return objects
}
