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

import "github.com/botobag/isoschema/token"

// Unwrap marks a single nullable/list stripping step applied while reading a field's value on the
// client. This core carries unwraps through every pass unchanged; it never validates them against
// the field's actual type shape (spec.md §9's open question, and the GLOSSARY entry for Unwraps).
type Unwrap struct {
	Span token.Span
	List bool // true strips one list layer; false strips one nullability layer.
}

// SelectionCommon holds the fields every selection variant carries regardless of stage: the name
// as written, its optional reader/normalization aliases, its unwraps, and its arguments. None of
// these are validated by this core (spec.md §4.4: "carried through unchanged").
type SelectionCommon struct {
	Name                WithLocation[string]
	ReaderAlias         *WithLocation[string]
	NormalizationAlias  *WithLocation[string]
	Unwraps             []Unwrap
	Arguments           []Argument
}

// thisIsUnvalidatedSelection seals UnvalidatedSelection.
type thisIsUnvalidatedSelection struct{}

func (thisIsUnvalidatedSelection) isUnvalidatedSelection() {}

// UnvalidatedSelection is one entry of a client field's selection tree before pass B has classified
// it. It is either an UnvalidatedScalarFieldSelection or an UnvalidatedLinkedFieldSelection,
// distinguished structurally by whether a nested selection set was written.
type UnvalidatedSelection interface {
	isUnvalidatedSelection()
	Common() SelectionCommon
}

// UnvalidatedScalarFieldSelection is a selection with no nested selection set.
type UnvalidatedScalarFieldSelection struct {
	thisIsUnvalidatedSelection
	SelectionCommon
}

// Common returns the fields shared by every selection variant.
func (s UnvalidatedScalarFieldSelection) Common() SelectionCommon { return s.SelectionCommon }

// UnvalidatedLinkedFieldSelection is a selection carrying a nested selection set.
type UnvalidatedLinkedFieldSelection struct {
	thisIsUnvalidatedSelection
	SelectionCommon
	SelectionSet []UnvalidatedSelection
}

// Common returns the fields shared by every selection variant.
func (s UnvalidatedLinkedFieldSelection) Common() SelectionCommon { return s.SelectionCommon }

var (
	_ UnvalidatedSelection = UnvalidatedScalarFieldSelection{}
	_ UnvalidatedSelection = UnvalidatedLinkedFieldSelection{}
)

// thisIsValidatedSelection seals ValidatedSelection.
type thisIsValidatedSelection struct{}

func (thisIsValidatedSelection) isValidatedSelection() {}

// ValidatedSelection is one entry of a client field's selection tree after pass B has classified it.
type ValidatedSelection interface {
	isValidatedSelection()
	Common() SelectionCommon
}

// ValidatedScalarFieldSelection carries the FieldDefinitionLocation pass B resolved the selection
// to: a server field (id) or a client field (id), per spec.md §4.4's scalar-selection rules.
type ValidatedScalarFieldSelection struct {
	thisIsValidatedSelection
	SelectionCommon
	AssociatedData FieldDefinitionLocation
}

// Common returns the fields shared by every selection variant.
func (s ValidatedScalarFieldSelection) Common() SelectionCommon { return s.SelectionCommon }

// ValidatedLinkedFieldSelection carries the object id the selection's nested selection set was
// validated against, plus the validated nested selection set itself.
type ValidatedLinkedFieldSelection struct {
	thisIsValidatedSelection
	SelectionCommon
	ParentObjectId ObjectId
	SelectionSet   []ValidatedSelection
}

// Common returns the fields shared by every selection variant.
func (s ValidatedLinkedFieldSelection) Common() SelectionCommon { return s.SelectionCommon }

var (
	_ ValidatedSelection = ValidatedScalarFieldSelection{}
	_ ValidatedSelection = ValidatedLinkedFieldSelection{}
)

// NewValidatedScalarFieldSelection builds a validated scalar selection from common (typically taken
// from the UnvalidatedSelection it replaces via Common()) and the FieldDefinitionLocation it
// resolved to.
func NewValidatedScalarFieldSelection(common SelectionCommon, associatedData FieldDefinitionLocation) ValidatedScalarFieldSelection {
	return ValidatedScalarFieldSelection{SelectionCommon: common, AssociatedData: associatedData}
}

// NewValidatedLinkedFieldSelection builds a validated linked selection from common, the object id
// its nested selection set was validated against, and that validated nested selection set.
func NewValidatedLinkedFieldSelection(common SelectionCommon, parentObjectId ObjectId, selectionSet []ValidatedSelection) ValidatedLinkedFieldSelection {
	return ValidatedLinkedFieldSelection{SelectionCommon: common, ParentObjectId: parentObjectId, SelectionSet: selectionSet}
}
