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

import (
	"fmt"

	"github.com/botobag/isoschema/iterator"
)

// Scalar is a leaf type in the schema: a server type with no further selectable fields. It does not
// change shape between stages, so (unlike Object/ServerField/ClientField) there is only one Scalar
// type.
type Scalar struct {
	Name        string
	Description string

	id ScalarId
}

// Id returns the scalar's own id.
func (s *Scalar) Id() ScalarId { return s.id }

// UnvalidatedData is the schema data store (spec.md §3 C3) before validation: dense, id-indexed
// arrays of objects, scalars, server fields and client fields, plus the defined_types name lookup
// that pass A and pass B both resolve against. Only a Builder (see builder.go) appends to it.
type UnvalidatedData struct {
	objects      []*UnvalidatedObject
	scalars      []*Scalar
	serverFields []*UnvalidatedServerField
	clientFields []*UnvalidatedClientField

	// DefinedTypes maps a bare type name to the SelectableFieldId it resolves to.
	DefinedTypes map[string]SelectableFieldId

	// Entrypoints lists the (source, parent type name, field name) triples the parser collected for
	// the entrypoint validator (spec.md §4.6).
	Entrypoints []WithLocation[EntrypointRef]
}

// EntrypointRef names a client field by its declared location, the pair the entrypoint validator
// resolves to a ClientFieldId.
type EntrypointRef struct {
	ParentTypeName string
	FieldName      string
}

// NewUnvalidatedData constructs an empty store.
func NewUnvalidatedData() *UnvalidatedData {
	return &UnvalidatedData{DefinedTypes: map[string]SelectableFieldId{}}
}

// Object returns the object stored at id. It panics if id was not issued by this store.
func (d *UnvalidatedData) Object(id ObjectId) *UnvalidatedObject {
	if int(id) < 0 || int(id) >= len(d.objects) {
		panic(fmt.Sprintf("schema: ObjectId %d is not valid for this store", id))
	}
	return d.objects[id]
}

// Scalar returns the scalar stored at id. It panics if id was not issued by this store.
func (d *UnvalidatedData) Scalar(id ScalarId) *Scalar {
	if int(id) < 0 || int(id) >= len(d.scalars) {
		panic(fmt.Sprintf("schema: ScalarId %d is not valid for this store", id))
	}
	return d.scalars[id]
}

// ServerField returns the server field stored at id. It panics if id was not issued by this store.
func (d *UnvalidatedData) ServerField(id ServerFieldId) *UnvalidatedServerField {
	if int(id) < 0 || int(id) >= len(d.serverFields) {
		panic(fmt.Sprintf("schema: ServerFieldId %d is not valid for this store", id))
	}
	return d.serverFields[id]
}

// ClientField returns the client field stored at id. It panics if id was not issued by this store.
func (d *UnvalidatedData) ClientField(id ClientFieldId) *UnvalidatedClientField {
	if int(id) < 0 || int(id) >= len(d.clientFields) {
		panic(fmt.Sprintf("schema: ClientFieldId %d is not valid for this store", id))
	}
	return d.clientFields[id]
}

// Objects returns every object in the store, indexed by ObjectId.
func (d *UnvalidatedData) Objects() []*UnvalidatedObject { return d.objects }

// Scalars returns every scalar in the store, indexed by ScalarId.
func (d *UnvalidatedData) Scalars() []*Scalar { return d.scalars }

// ServerFields returns every server field in the store, indexed by ServerFieldId.
func (d *UnvalidatedData) ServerFields() []*UnvalidatedServerField { return d.serverFields }

// ClientFields returns every client field in the store, indexed by ClientFieldId.
func (d *UnvalidatedData) ClientFields() []*UnvalidatedClientField { return d.clientFields }

// TypeName renders a SelectableFieldId back to its declared name.
func (d *UnvalidatedData) TypeName(id SelectableFieldId) string {
	switch id := id.(type) {
	case ScalarSelectableFieldId:
		return d.Scalar(id.ScalarId).Name
	case ObjectSelectableFieldId:
		return d.Object(id.ObjectId).Name
	default:
		panic(fmt.Sprintf("schema: unknown SelectableFieldId implementation %T", id))
	}
}

func (d *UnvalidatedData) addObject(obj *UnvalidatedObject) ObjectId {
	id := ObjectId(len(d.objects))
	obj.id = id
	d.objects = append(d.objects, obj)
	return id
}

func (d *UnvalidatedData) addScalar(s *Scalar) ScalarId {
	id := ScalarId(len(d.scalars))
	s.id = id
	d.scalars = append(d.scalars, s)
	return id
}

func (d *UnvalidatedData) addServerField(f *UnvalidatedServerField) ServerFieldId {
	id := ServerFieldId(len(d.serverFields))
	f.id = id
	d.serverFields = append(d.serverFields, f)
	return id
}

func (d *UnvalidatedData) addClientField(f *UnvalidatedClientField) ClientFieldId {
	id := ClientFieldId(len(d.clientFields))
	f.id = id
	d.clientFields = append(d.clientFields, f)
	return id
}

// ObjectIterator enumerates a store's objects in ObjectId order, following the pattern package
// iterator documents: a Next method returning iterator.Done once exhausted.
type ObjectIterator struct {
	objects []*UnvalidatedObject
	next    int
}

// ObjectIterator returns an iterator over the store's objects in ObjectId order.
func (d *UnvalidatedData) ObjectIterator() *ObjectIterator {
	return &ObjectIterator{objects: d.objects}
}

// Next returns the next object in the iteration, or iterator.Done once exhausted.
func (it *ObjectIterator) Next() (*UnvalidatedObject, error) {
	if it.next >= len(it.objects) {
		return nil, iterator.Done
	}
	obj := it.objects[it.next]
	it.next++
	return obj, nil
}

// ValidatedData is the schema data store after every pass has run: the same dense arrays, now
// populated with validated objects, server fields and client fields. Scalars never change shape, so
// they are shared verbatim with the UnvalidatedData they were built from.
type ValidatedData struct {
	objects      []*ValidatedObject
	scalars      []*Scalar
	serverFields []*ValidatedServerField
	clientFields []*ValidatedClientField

	DefinedTypes map[string]SelectableFieldId
}

// NewValidatedData assembles a ValidatedData from the outputs of passes A, B and C, stamping each
// element's id to its position in the slice. Ids are stable across passes (spec.md §5: "entries are
// never removed... ids are stable"), so the caller is expected to have preserved original array
// order throughout — this just re-attaches the unexported id fields, which package validate cannot
// set directly.
func NewValidatedData(
	objects []*ValidatedObject,
	scalars []*Scalar,
	serverFields []*ValidatedServerField,
	clientFields []*ValidatedClientField,
	definedTypes map[string]SelectableFieldId,
) *ValidatedData {
	for i, o := range objects {
		o.id = ObjectId(i)
	}
	for i, s := range scalars {
		s.id = ScalarId(i)
	}
	for i, f := range serverFields {
		f.id = ServerFieldId(i)
	}
	for i, f := range clientFields {
		f.id = ClientFieldId(i)
	}
	return &ValidatedData{
		objects:      objects,
		scalars:      scalars,
		serverFields: serverFields,
		clientFields: clientFields,
		DefinedTypes: definedTypes,
	}
}

// Object returns the object stored at id. It panics if id was not issued by this store.
func (d *ValidatedData) Object(id ObjectId) *ValidatedObject {
	if int(id) < 0 || int(id) >= len(d.objects) {
		panic(fmt.Sprintf("schema: ObjectId %d is not valid for this store", id))
	}
	return d.objects[id]
}

// Scalar returns the scalar stored at id. It panics if id was not issued by this store.
func (d *ValidatedData) Scalar(id ScalarId) *Scalar {
	if int(id) < 0 || int(id) >= len(d.scalars) {
		panic(fmt.Sprintf("schema: ScalarId %d is not valid for this store", id))
	}
	return d.scalars[id]
}

// ServerField returns the server field stored at id. It panics if id was not issued by this store.
func (d *ValidatedData) ServerField(id ServerFieldId) *ValidatedServerField {
	if int(id) < 0 || int(id) >= len(d.serverFields) {
		panic(fmt.Sprintf("schema: ServerFieldId %d is not valid for this store", id))
	}
	return d.serverFields[id]
}

// ClientField returns the client field stored at id. It panics if id was not issued by this store.
func (d *ValidatedData) ClientField(id ClientFieldId) *ValidatedClientField {
	if int(id) < 0 || int(id) >= len(d.clientFields) {
		panic(fmt.Sprintf("schema: ClientFieldId %d is not valid for this store", id))
	}
	return d.clientFields[id]
}

// Objects returns every object in the store, indexed by ObjectId.
func (d *ValidatedData) Objects() []*ValidatedObject { return d.objects }

// Scalars returns every scalar in the store, indexed by ScalarId.
func (d *ValidatedData) Scalars() []*Scalar { return d.scalars }

// ServerFields returns every server field in the store, indexed by ServerFieldId.
func (d *ValidatedData) ServerFields() []*ValidatedServerField { return d.serverFields }

// ClientFields returns every client field in the store, indexed by ClientFieldId.
func (d *ValidatedData) ClientFields() []*ValidatedClientField { return d.clientFields }

// TypeName renders a SelectableFieldId back to its declared name.
func (d *ValidatedData) TypeName(id SelectableFieldId) string {
	switch id := id.(type) {
	case ScalarSelectableFieldId:
		return d.Scalar(id.ScalarId).Name
	case ObjectSelectableFieldId:
		return d.Object(id.ObjectId).Name
	default:
		panic(fmt.Sprintf("schema: unknown SelectableFieldId implementation %T", id))
	}
}
