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

// ClientFieldVariant distinguishes the flavors of user-authored derived field spec.md §3 names.
// This core does not interpret the variant beyond carrying it through; downstream artifact
// generation (out of scope, spec.md §1) branches on it.
type ClientFieldVariant uint8

// Enumeration of ClientFieldVariant.
const (
	ComponentVariant ClientFieldVariant = iota
	EagerVariant
	RefetchFieldVariant
)

func (v ClientFieldVariant) String() string {
	switch v {
	case ComponentVariant:
		return "Component"
	case EagerVariant:
		return "Eager"
	case RefetchFieldVariant:
		return "RefetchField"
	default:
		return "Unknown"
	}
}

// ActionKind records what a client field does with its selection once read: normalize it into the
// network-layer store, or leave it for a component to render. This core carries it through
// unchanged; it is opaque to validation.
type ActionKind uint8

// Enumeration of ActionKind.
const (
	NamedImportAction ActionKind = iota
	IdentityAction
)

// VariableDefinition is a client field's declared variable, generic over its type payload the same
// way ServerField's argument type is (TypeAnnotation[UnvalidatedTypeName] pre-resolution,
// TypeAnnotation[SelectableFieldId] post-resolution).
type VariableDefinition[A any] struct {
	Name WithLocation[string]
	Type A
}

// ClientFieldSelectionSet pairs a client field's optional selection set with the unwraps applied to
// it as a whole, generic over Sel so the same shape serves both the unvalidated and validated
// selection-tree element types.
type ClientFieldSelectionSet[Sel any] struct {
	Selections []Sel
	Unwraps    []Unwrap
}

// clientFieldCommon holds everything a client field carries regardless of validation stage.
type clientFieldCommon struct {
	Description      string
	Name             WithLocation[string]
	ParentObjectId   ObjectId
	ParentObjectName string
	Variant          ClientFieldVariant
	Action           ActionKind
}

// UnvalidatedClientField is a client field before pass B has resolved its variable-definition types
// and classified its selection tree.
type UnvalidatedClientField struct {
	clientFieldCommon
	VariableDefinitions []VariableDefinition[TypeAnnotation[UnvalidatedTypeName]]
	SelectionSet        *ClientFieldSelectionSet[UnvalidatedSelection]

	id ClientFieldId
}

// Id returns the field's own id.
func (f *UnvalidatedClientField) Id() ClientFieldId { return f.id }

// ValidatedClientField is a client field after pass B: variable definitions carry resolved ids and,
// when present, the selection tree is fully classified.
type ValidatedClientField struct {
	clientFieldCommon
	VariableDefinitions []VariableDefinition[TypeAnnotation[SelectableFieldId]]
	SelectionSet        *ClientFieldSelectionSet[ValidatedSelection]

	id ClientFieldId
}

// Id returns the field's own id.
func (f *ValidatedClientField) Id() ClientFieldId { return f.id }
