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
	validatorpkg "github.com/go-playground/validator/v10"
)

// configValidate is shared by every *Config type below. go-playground/validator checks struct tags
// (required, etc.) before a Builder ever touches the schema store, so malformed collaborator input
// (spec.md §6's parser/store-population boundary) is rejected with a single, well-formed error
// instead of surfacing as a confusing panic deep inside pass A or pass B.
var configValidate = validatorpkg.New(validatorpkg.WithRequiredStructEnabled())

// ObjectConfig describes an object to add to the store. ServerFieldIds/ClientFieldIds are filled in
// by the Builder as fields are added against this object, not supplied up front.
type ObjectConfig struct {
	Name        string `validate:"required"`
	Description string
	Directives  []Directive
}

// ServerFieldConfig describes a server field to add to an already-added object.
type ServerFieldConfig struct {
	ParentObjectName string                             `validate:"required"`
	Name             WithLocation[string]                `validate:"required"`
	Description      string
	Type             TypeAnnotation[UnvalidatedTypeName]
	Arguments        []InputValueDefinition[TypeAnnotation[UnvalidatedTypeName]]
	IsIdField        bool
}

// ClientFieldConfig describes a client field to add to an already-added object.
type ClientFieldConfig struct {
	ParentObjectName string                                                       `validate:"required"`
	Name             WithLocation[string]                                          `validate:"required"`
	Description      string
	Variant          ClientFieldVariant
	Action           ActionKind
	VariableDefinitions []VariableDefinition[TypeAnnotation[UnvalidatedTypeName]]
	SelectionSet     *ClientFieldSelectionSet[UnvalidatedSelection]
}

// Builder assembles an UnvalidatedSchema incrementally: a parser (or, in tests, a fixture) adds
// scalars and objects, then fields against those objects, then registers entrypoints. The Builder
// is the only code in this package permitted to append to a store's arrays; every pass in package
// validate only ever reads from one.
type Builder struct {
	data        *UnvalidatedData
	objectByName map[string]ObjectId
}

// NewBuilder constructs a Builder around a fresh, empty store.
func NewBuilder() *Builder {
	return &Builder{
		data:         NewUnvalidatedData(),
		objectByName: map[string]ObjectId{},
	}
}

// AddScalar registers a scalar type under name, returning its id. It also records name in
// DefinedTypes so later type references resolve to it.
func (b *Builder) AddScalar(name, description string) ScalarId {
	id := b.data.addScalar(&Scalar{Name: name, Description: description})
	b.data.DefinedTypes[name] = Scalar(id)
	return id
}

// AddObject registers an object per cfg, returning its id. It also records the object's name in
// DefinedTypes so later type references resolve to it.
func (b *Builder) AddObject(cfg ObjectConfig) (ObjectId, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return 0, WrapError(err, "schema: invalid ObjectConfig")
	}
	obj := &UnvalidatedObject{
		Description:       cfg.Description,
		Name:              cfg.Name,
		Directives:        cfg.Directives,
		EncounteredFields: map[string]EncounteredField{},
	}
	id := b.data.addObject(obj)
	b.objectByName[cfg.Name] = id
	b.data.DefinedTypes[cfg.Name] = Object(id)
	return id, nil
}

// AddServerField registers a server field per cfg against its named parent object, returning its
// id. The field's name is recorded in the parent's EncounteredFields map as a ServerEncounteredField
// carrying the field's still-unresolved declared type name, per spec.md §3's invariant that every
// encountered-fields entry is resolvable to exactly one field.
func (b *Builder) AddServerField(cfg ServerFieldConfig) (ServerFieldId, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return 0, WrapError(err, "schema: invalid ServerFieldConfig")
	}
	parentId, ok := b.objectByName[cfg.ParentObjectName]
	if !ok {
		return 0, NewError("schema: unknown parent object "+cfg.ParentObjectName, ErrKindInternal)
	}
	field := &UnvalidatedServerField{
		Description: cfg.Description,
		Name:        cfg.Name,
		ParentId:    parentId,
		Arguments:   cfg.Arguments,
		Type:        cfg.Type,
	}
	id := b.data.addServerField(field)

	obj := b.data.Object(parentId)
	obj.ServerFieldIds = append(obj.ServerFieldIds, id)
	obj.EncounteredFields[cfg.Name.Item] = ServerEncountered(cfg.Type.Inner())
	if cfg.IsIdField {
		obj.IdField = &id
	}
	return id, nil
}

// AddClientField registers a client field per cfg against its named parent object, returning its
// id. The field's name is recorded in the parent's EncounteredFields map as a
// ClientEncounteredField.
func (b *Builder) AddClientField(cfg ClientFieldConfig) (ClientFieldId, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return 0, WrapError(err, "schema: invalid ClientFieldConfig")
	}
	parentId, ok := b.objectByName[cfg.ParentObjectName]
	if !ok {
		return 0, NewError("schema: unknown parent object "+cfg.ParentObjectName, ErrKindInternal)
	}
	field := &UnvalidatedClientField{
		clientFieldCommon: clientFieldCommon{
			Description:      cfg.Description,
			Name:             cfg.Name,
			ParentObjectId:   parentId,
			ParentObjectName: cfg.ParentObjectName,
			Variant:          cfg.Variant,
			Action:           cfg.Action,
		},
		VariableDefinitions: cfg.VariableDefinitions,
		SelectionSet:        cfg.SelectionSet,
	}
	id := b.data.addClientField(field)

	obj := b.data.Object(parentId)
	obj.ClientFieldIds = append(obj.ClientFieldIds, id)
	obj.EncounteredFields[cfg.Name.Item] = ClientEncountered()
	return id, nil
}

// AddEntrypoint registers ref as a top-level entrypoint, located at loc, to be resolved by the
// entrypoint validator (spec.md §4.6).
func (b *Builder) AddEntrypoint(ref EntrypointRef, loc WithLocation[struct{}]) {
	b.data.Entrypoints = append(b.data.Entrypoints, WithLocation[EntrypointRef]{
		Item:     ref,
		Source:   loc.Source,
		Location: loc.Location,
	})
}

// Build finalizes construction and returns the assembled UnvalidatedSchema.
func (b *Builder) Build() UnvalidatedSchema {
	return UnvalidatedSchema{Data: b.data}
}
