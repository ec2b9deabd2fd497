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

import "github.com/botobag/isoschema/schema"

// LocatedError pairs a SchemaError with the source location it should be reported at, the unit
// every pass in this package accumulates and the driver sorts into source-discovery order.
type LocatedError = schema.WithLocation[*SchemaError]

// locate wraps err at the position of w, carrying over w's source and span.
func locate[T any](w schema.WithLocation[T], err *SchemaError) LocatedError {
	return schema.NewWithLocation(err, w.Source, w.Location)
}

// resolveTypeAnnotation resolves every leaf name of ann against data's DefinedTypes table, returning
// ok=false without mutating anything if the single leaf name isn't registered there.
func resolveTypeAnnotation(
	ann schema.TypeAnnotation[schema.UnvalidatedTypeName],
	data *schema.UnvalidatedData,
) (schema.TypeAnnotation[schema.SelectableFieldId], bool) {
	id, ok := data.DefinedTypes[string(ann.Inner())]
	if !ok {
		return schema.TypeAnnotation[schema.SelectableFieldId]{}, false
	}
	return schema.Map(ann, func(schema.UnvalidatedTypeName) schema.SelectableFieldId {
		return id
	}), true
}

// RunPassA resolves every server field's declared type and its arguments' inner types against
// data's DefinedTypes table (distilled schema §4.3, component C5). Fields are resolved
// independently — every field is attempted even after an earlier one failed — and within a single
// field, an argument type error is collected alongside the field's own type error rather than
// short-circuiting at the first one found (only a field with zero errors of its own is emitted).
func RunPassA(data *schema.UnvalidatedData) ([]*schema.ValidatedServerField, []LocatedError) {
	result := schema.CollectResultsFlat(
		data.ServerFields(),
		func(field *schema.UnvalidatedServerField) ([]*schema.ValidatedServerField, []LocatedError) {
			parentName := data.Object(field.ParentId).Name

			var errs []LocatedError

			resolvedType, ok := resolveTypeAnnotation(field.Type, data)
			if !ok {
				errs = append(errs, locate(field.Name, FieldTypenameDoesNotExist(
					parentName, field.Name.Item, string(field.Type.Inner()),
				)))
			}

			resolvedArgs := make([]schema.InputValueDefinition[schema.TypeAnnotation[schema.SelectableFieldId]], 0, len(field.Arguments))
			for _, arg := range field.Arguments {
				resolvedArgType, ok := resolveTypeAnnotation(arg.Type, data)
				if !ok {
					errs = append(errs, locate(field.Name, FieldArgumentTypeDoesNotExist(
						arg.Name.Item, parentName, field.Name.Item, string(arg.Type.Inner()),
					)))
					continue
				}
				resolvedArgs = append(resolvedArgs, schema.InputValueDefinition[schema.TypeAnnotation[schema.SelectableFieldId]]{
					Name: arg.Name,
					Type: resolvedArgType,
				})
			}

			if len(errs) > 0 {
				return nil, errs
			}

			validated := &schema.ValidatedServerField{
				Description: field.Description,
				Name:        field.Name,
				ParentId:    field.ParentId,
				Arguments:   resolvedArgs,
				Type:        resolvedType,
			}
			return []*schema.ValidatedServerField{validated}, nil
		},
	)
	return result.Value, result.Errors
}
