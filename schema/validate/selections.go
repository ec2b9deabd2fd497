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

// findServerFieldIdByName locates the ServerFieldId on parent whose declared name is name. It
// reports ok=false if none matches; pass C then falls back to parent's client fields, while
// validateScalarSelection panics, since there the name is already known (via EncounteredFields) to
// belong to one of parent's own server fields.
func findServerFieldIdByName(parent *schema.UnvalidatedObject, name string, data *schema.UnvalidatedData) (schema.ServerFieldId, bool) {
	for _, id := range parent.ServerFieldIds {
		if data.ServerField(id).Name.Item == name {
			return id, true
		}
	}
	return 0, false
}

// findClientFieldIdByName locates the ClientFieldId on parent whose declared name is name.
func findClientFieldIdByName(parent *schema.UnvalidatedObject, name string, data *schema.UnvalidatedData) (schema.ClientFieldId, bool) {
	for _, id := range parent.ClientFieldIds {
		if data.ClientField(id).Name.Item == name {
			return id, true
		}
	}
	return 0, false
}

// resolveVariableDefinition resolves a single client-field variable's declared type against data's
// DefinedTypes table.
func resolveVariableDefinition(
	vd schema.VariableDefinition[schema.TypeAnnotation[schema.UnvalidatedTypeName]],
	data *schema.UnvalidatedData,
) ([]schema.VariableDefinition[schema.TypeAnnotation[schema.SelectableFieldId]], []LocatedError) {
	resolved, ok := resolveTypeAnnotation(vd.Type, data)
	if !ok {
		err := locate(vd.Name, VariableDefinitionInnerTypeDoesNotExist(
			vd.Name.Item, vd.Type.String(), string(vd.Type.Inner()),
		))
		return nil, []LocatedError{err}
	}
	return []schema.VariableDefinition[schema.TypeAnnotation[schema.SelectableFieldId]]{
		{Name: vd.Name, Type: resolved},
	}, nil
}

// validateSelections walks selections against parent, classifying each one. It mirrors the source
// compiler's selection-tree validator: within one selection tree, evaluation stops at the first
// error encountered (a selection list is collected the way Rust's collect::<Result<Vec<_>, _>>()
// is — no short-circuit *between* client fields, but full short-circuit *within* one client field's
// own tree), so a single error pointer, not a list, is returned per call.
func validateSelections(
	selections []schema.UnvalidatedSelection,
	parent *schema.UnvalidatedObject,
	clientFieldParentName, clientFieldName string,
	data *schema.UnvalidatedData,
) ([]schema.ValidatedSelection, *LocatedError) {
	validated := make([]schema.ValidatedSelection, 0, len(selections))

	for _, sel := range selections {
		common := sel.Common()
		name := common.Name.Item

		encountered, ok := parent.EncounteredFields[name]
		if !ok {
			candidates := make([]string, 0, len(parent.EncounteredFields))
			for known := range parent.EncounteredFields {
				candidates = append(candidates, known)
			}
			err := locate(common.Name, ClientFieldSelectionFieldDoesNotExist(
				clientFieldParentName, clientFieldName, parent.Name, name, candidates,
			))
			return nil, &err
		}

		switch sel := sel.(type) {
		case schema.UnvalidatedScalarFieldSelection:
			v, err := validateScalarSelection(common, encountered, parent, clientFieldParentName, clientFieldName, name, data)
			if err != nil {
				return nil, err
			}
			validated = append(validated, v)

		case schema.UnvalidatedLinkedFieldSelection:
			v, err := validateLinkedSelection(common, encountered, sel, parent, clientFieldParentName, clientFieldName, name, data)
			if err != nil {
				return nil, err
			}
			validated = append(validated, v)

		default:
			panic(fmt.Sprintf("validate: unknown UnvalidatedSelection implementation %T", sel))
		}
	}

	return validated, nil
}

func validateScalarSelection(
	common schema.SelectionCommon,
	encountered schema.EncounteredField,
	parent *schema.UnvalidatedObject,
	clientFieldParentName, clientFieldName, name string,
	data *schema.UnvalidatedData,
) (schema.ValidatedSelection, *LocatedError) {
	switch enc := encountered.(type) {
	case schema.ClientEncounteredField:
		id, ok := findClientFieldIdByName(parent, name, data)
		if !ok {
			panic(fmt.Sprintf("validate: encountered client field %q on %q has no matching client field", name, parent.Name))
		}
		return schema.NewValidatedScalarFieldSelection(common, schema.ClientField(id)), nil

	case schema.ServerEncounteredField:
		selectable, ok := data.DefinedTypes[string(enc.TypeName)]
		if !ok {
			panic(fmt.Sprintf("validate: server field %q on %q declares unresolved type %q after pass A succeeded", name, parent.Name, enc.TypeName))
		}
		switch selectable := selectable.(type) {
		case schema.ObjectSelectableFieldId:
			err := locate(common.Name, ClientFieldSelectionFieldIsNotScalar(
				clientFieldParentName, clientFieldName, parent.Name, name, "an object", data.TypeName(selectable),
			))
			return nil, &err
		case schema.ScalarSelectableFieldId:
			sfid, ok := findServerFieldIdByName(parent, name, data)
			if !ok {
				panic(fmt.Sprintf("validate: encountered server field %q on %q has no matching server field", name, parent.Name))
			}
			return schema.NewValidatedScalarFieldSelection(common, schema.ServerField(sfid)), nil
		default:
			panic(fmt.Sprintf("validate: unknown SelectableFieldId implementation %T", selectable))
		}

	default:
		panic(fmt.Sprintf("validate: unknown EncounteredField implementation %T", enc))
	}
}

func validateLinkedSelection(
	common schema.SelectionCommon,
	encountered schema.EncounteredField,
	sel schema.UnvalidatedLinkedFieldSelection,
	parent *schema.UnvalidatedObject,
	clientFieldParentName, clientFieldName, name string,
	data *schema.UnvalidatedData,
) (schema.ValidatedSelection, *LocatedError) {
	switch enc := encountered.(type) {
	case schema.ClientEncounteredField:
		err := locate(common.Name, ClientFieldSelectionFieldIsResolver(
			clientFieldParentName, clientFieldName, parent.Name, name,
		))
		return nil, &err

	case schema.ServerEncounteredField:
		selectable, ok := data.DefinedTypes[string(enc.TypeName)]
		if !ok {
			panic(fmt.Sprintf("validate: server field %q on %q declares unresolved type %q after pass A succeeded", name, parent.Name, enc.TypeName))
		}
		switch selectable := selectable.(type) {
		case schema.ScalarSelectableFieldId:
			err := locate(common.Name, ClientFieldSelectionFieldIsScalar(
				clientFieldParentName, clientFieldName, parent.Name, name, "a scalar", data.TypeName(selectable),
			))
			return nil, &err
		case schema.ObjectSelectableFieldId:
			child := data.Object(selectable.ObjectId)
			childValidated, err := validateSelections(sel.SelectionSet, child, clientFieldParentName, clientFieldName, data)
			if err != nil {
				return nil, err
			}
			return schema.NewValidatedLinkedFieldSelection(common, selectable.ObjectId, childValidated), nil
		default:
			panic(fmt.Sprintf("validate: unknown SelectableFieldId implementation %T", selectable))
		}

	default:
		panic(fmt.Sprintf("validate: unknown EncounteredField implementation %T", enc))
	}
}

// RunPassB resolves every client field's variable definitions and, when present, classifies its
// selection tree (distilled schema §4.4, component C6). Client fields are validated independently
// of one another — every one is attempted even after an earlier one failed — but see
// validateSelections for the short-circuit behavior within a single field's own tree.
func RunPassB(data *schema.UnvalidatedData) ([]*schema.ValidatedClientField, []LocatedError) {
	result := schema.CollectResultsFlat(
		data.ClientFields(),
		func(field *schema.UnvalidatedClientField) ([]*schema.ValidatedClientField, []LocatedError) {
			varsResult := schema.CollectResultsFlat(field.VariableDefinitions, func(vd schema.VariableDefinition[schema.TypeAnnotation[schema.UnvalidatedTypeName]]) ([]schema.VariableDefinition[schema.TypeAnnotation[schema.SelectableFieldId]], []LocatedError) {
				return resolveVariableDefinition(vd, data)
			})

			var selSet *schema.ClientFieldSelectionSet[schema.ValidatedSelection]
			var selErrs []LocatedError
			if field.SelectionSet != nil {
				parent := data.Object(field.ParentObjectId)
				validated, err := validateSelections(field.SelectionSet.Selections, parent, field.ParentObjectName, field.Name.Item, data)
				if err != nil {
					selErrs = append(selErrs, *err)
				} else {
					selSet = &schema.ClientFieldSelectionSet[schema.ValidatedSelection]{
						Selections: validated,
						Unwraps:    field.SelectionSet.Unwraps,
					}
				}
			}

			errs := append(append([]LocatedError{}, varsResult.Errors...), selErrs...)
			if len(errs) > 0 {
				return nil, errs
			}

			validated := &schema.ValidatedClientField{
				VariableDefinitions: varsResult.Value,
				SelectionSet:        selSet,
			}
			validated.Description = field.Description
			validated.Name = field.Name
			validated.ParentObjectId = field.ParentObjectId
			validated.ParentObjectName = field.ParentObjectName
			validated.Variant = field.Variant
			validated.Action = field.Action
			return []*schema.ValidatedClientField{validated}, nil
		},
	)
	return result.Value, result.Errors
}
