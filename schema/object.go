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

// UnvalidatedTypeName is a bare type name as written in source, not yet resolved against a store's
// DefinedTypes table.
type UnvalidatedTypeName string

// String implements the stringer interface TypeAnnotation.String relies on.
func (n UnvalidatedTypeName) String() string { return string(n) }

// thisIsEncounteredField seals EncounteredField.
type thisIsEncounteredField struct{}

func (thisIsEncounteredField) isEncounteredField() {}

// EncounteredField is the pre-validation payload recorded against a name in an UnvalidatedObject's
// EncounteredFields map: either the textual type name of a server field, or a marker that the name
// belongs to a client field (whose id is found by name in the object's ClientFieldIds when pass C
// reindexes). It is replaced wholesale by a FieldDefinitionLocation once pass C runs.
type EncounteredField interface {
	isEncounteredField()
}

// ServerEncounteredField records that a name was declared as a server field with the given textual
// return type.
type ServerEncounteredField struct {
	thisIsEncounteredField
	TypeName UnvalidatedTypeName
}

// ClientEncounteredField records that a name was declared as a client (resolver) field. The actual
// ClientFieldId is resolved by name during pass C, not stored here.
type ClientEncounteredField struct {
	thisIsEncounteredField
}

var (
	_ EncounteredField = ServerEncounteredField{}
	_ EncounteredField = ClientEncounteredField{}
)

// ServerEncountered constructs the EncounteredField recording a server field's declared type name.
func ServerEncountered(typeName UnvalidatedTypeName) EncounteredField {
	return ServerEncounteredField{TypeName: typeName}
}

// ClientEncountered constructs the EncounteredField marking a name as client-authored.
func ClientEncountered() EncounteredField { return ClientEncounteredField{} }

// UnvalidatedObject is a SchemaObject (spec.md §3) before pass C has reindexed its encountered
// fields. Its ServerFieldIds/ClientFieldIds lists are already final at construction time — only the
// id types they're stamped with (ServerFieldId/ClientFieldId) are stable across every pass; only the
// EncounteredFields map's value type changes shape as validation advances.
type UnvalidatedObject struct {
	Description     string
	Name            string
	ServerFieldIds  []ServerFieldId
	ClientFieldIds  []ClientFieldId
	IdField         *ServerFieldId
	Directives      []Directive
	EncounteredFields map[string]EncounteredField

	id ObjectId
}

// Id returns the object's own id.
func (o *UnvalidatedObject) Id() ObjectId { return o.id }

// ValidatedObject is a SchemaObject after pass C has reindexed EncounteredFields to
// FieldDefinitionLocation values. Every other field is carried over unchanged from the
// UnvalidatedObject it was built from.
type ValidatedObject struct {
	Description       string
	Name              string
	ServerFieldIds    []ServerFieldId
	ClientFieldIds    []ClientFieldId
	IdField           *ServerFieldId
	Directives        []Directive
	EncounteredFields map[string]FieldDefinitionLocation

	id ObjectId
}

// Id returns the object's own id.
func (o *ValidatedObject) Id() ObjectId { return o.id }
