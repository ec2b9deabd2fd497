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

import "fmt"

// ObjectId indexes into a Store's object array. It is opaque; callers obtain one from a Store and
// pass it back, never construct it directly except the Store itself.
type ObjectId int

// ScalarId indexes into a Store's scalar array.
type ScalarId int

// ServerFieldId indexes into a Store's server-field array.
type ServerFieldId int

// ClientFieldId indexes into a Store's client-field array.
type ClientFieldId int

// thisIsSelectableFieldId seals SelectableFieldId so only types defined in this package can
// implement it, preventing it from ever being confused with FieldDefinitionLocation even though
// both are two-armed sum types over similarly-named ids (spec.md §9: "two orthogonal sum types must
// not collapse").
type thisIsSelectableFieldId struct{}

func (thisIsSelectableFieldId) isSelectableFieldId() {}

// SelectableFieldId classifies a *type* reference as either a scalar or an object — i.e. it answers
// "what shape of value does this type annotation's innermost name refer to", never "where is this
// field defined".
type SelectableFieldId interface {
	isSelectableFieldId()
}

// ScalarSelectableFieldId wraps a ScalarId as a SelectableFieldId.
type ScalarSelectableFieldId struct {
	thisIsSelectableFieldId
	ScalarId ScalarId
}

// ObjectSelectableFieldId wraps an ObjectId as a SelectableFieldId.
type ObjectSelectableFieldId struct {
	thisIsSelectableFieldId
	ObjectId ObjectId
}

var (
	_ SelectableFieldId = ScalarSelectableFieldId{}
	_ SelectableFieldId = ObjectSelectableFieldId{}
)

// Scalar constructs the SelectableFieldId wrapping a scalar id.
func Scalar(id ScalarId) SelectableFieldId { return ScalarSelectableFieldId{ScalarId: id} }

// Object constructs the SelectableFieldId wrapping an object id.
func Object(id ObjectId) SelectableFieldId { return ObjectSelectableFieldId{ObjectId: id} }

// thisIsFieldDefinitionLocation seals FieldDefinitionLocation.
type thisIsFieldDefinitionLocation struct{}

func (thisIsFieldDefinitionLocation) isFieldDefinitionLocation() {}

// FieldDefinitionLocation classifies a *field* reference as either server-resolved or
// client-derived — i.e. it answers "where does the implementation of this selected field live",
// orthogonal to what SelectableFieldId answers.
type FieldDefinitionLocation interface {
	isFieldDefinitionLocation()
}

// ServerFieldLocation wraps a ServerFieldId as a FieldDefinitionLocation.
type ServerFieldLocation struct {
	thisIsFieldDefinitionLocation
	ServerFieldId ServerFieldId
}

// ClientFieldLocation wraps a ClientFieldId as a FieldDefinitionLocation.
type ClientFieldLocation struct {
	thisIsFieldDefinitionLocation
	ClientFieldId ClientFieldId
}

var (
	_ FieldDefinitionLocation = ServerFieldLocation{}
	_ FieldDefinitionLocation = ClientFieldLocation{}
)

// ServerField constructs the FieldDefinitionLocation wrapping a server field id.
func ServerField(id ServerFieldId) FieldDefinitionLocation { return ServerFieldLocation{ServerFieldId: id} }

// ClientField constructs the FieldDefinitionLocation wrapping a client field id.
func ClientField(id ClientFieldId) FieldDefinitionLocation { return ClientFieldLocation{ClientFieldId: id} }

// String renders a SelectableFieldId for debugging/panic messages.
func (id ScalarSelectableFieldId) String() string { return fmt.Sprintf("Scalar(%d)", id.ScalarId) }

// String renders a SelectableFieldId for debugging/panic messages.
func (id ObjectSelectableFieldId) String() string { return fmt.Sprintf("Object(%d)", id.ObjectId) }
