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

// Package validate resolves an schema.UnvalidatedSchema into a schema.ValidatedSchema: it interns
// textual type references, walks and classifies every client field's selection tree, reindexes each
// object's encountered fields, and aggregates every error produced along the way.
package validate

import (
	"fmt"
	"strings"

	"github.com/botobag/isoschema/internal/util"
)

// Kind enumerates the eight ValidateSchemaError variants of the taxonomy (distilled schema §7).
// It doubles as the label attached to the error counter in metrics.go.
type Kind uint8

// Enumeration of Kind.
const (
	FieldTypenameDoesNotExistKind Kind = iota
	FieldArgumentTypeDoesNotExistKind
	ClientFieldSelectionFieldDoesNotExistKind
	ClientFieldSelectionFieldIsNotScalarKind
	ClientFieldSelectionFieldIsScalarKind
	ClientFieldSelectionFieldIsResolverKind
	VariableDefinitionInnerTypeDoesNotExistKind
	ErrorValidatingEntrypointDeclarationKind
)

func (k Kind) String() string {
	switch k {
	case FieldTypenameDoesNotExistKind:
		return "FieldTypenameDoesNotExist"
	case FieldArgumentTypeDoesNotExistKind:
		return "FieldArgumentTypeDoesNotExist"
	case ClientFieldSelectionFieldDoesNotExistKind:
		return "ClientFieldSelectionFieldDoesNotExist"
	case ClientFieldSelectionFieldIsNotScalarKind:
		return "ClientFieldSelectionFieldIsNotScalar"
	case ClientFieldSelectionFieldIsScalarKind:
		return "ClientFieldSelectionFieldIsScalar"
	case ClientFieldSelectionFieldIsResolverKind:
		return "ClientFieldSelectionFieldIsResolver"
	case VariableDefinitionInnerTypeDoesNotExistKind:
		return "VariableDefinitionInnerTypeDoesNotExist"
	case ErrorValidatingEntrypointDeclarationKind:
		return "ErrorValidatingEntrypointDeclaration"
	default:
		return "UnknownValidateSchemaError"
	}
}

// SchemaError is a single error produced while validating a schema, carrying the structured context
// the taxonomy entry names plus the rendered message. Fields irrelevant to Kind are left zero.
type SchemaError struct {
	Kind Kind

	ParentTypeName string
	FieldName      string
	FieldType      string

	ArgumentName string
	ArgumentType string

	ClientFieldParentTypeName string
	ClientFieldName           string
	FieldParentTypeName       string

	TargetType     string
	TargetTypeName string

	VariableName string
	TypeRendered string
	InnerType    string

	// Suggestions holds candidate field names close to FieldName, most relevant first (only
	// populated by ClientFieldSelectionFieldDoesNotExist).
	Suggestions []string

	Message string
}

// suggestionClause renders a "did you mean ...?" clause for the closest few suggestions, or the
// empty string if there are none.
func suggestionClause(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	const max = 5
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf(" Did you mean %s?", strings.Join(quoted, ", "))
}

// Error implements Go's error interface by rendering the template for e.Kind.
func (e *SchemaError) Error() string { return e.Message }

// FieldTypenameDoesNotExistMessage renders the message for a server field whose declared return
// type name is absent from the schema's defined types.
func FieldTypenameDoesNotExistMessage(parentTypeName, fieldName, fieldType string) string {
	return fmt.Sprintf(
		`the type %q, declared as the type of field "%s.%s", does not exist`,
		fieldType, parentTypeName, fieldName,
	)
}

// FieldTypenameDoesNotExist builds the SchemaError for that condition.
func FieldTypenameDoesNotExist(parentTypeName, fieldName, fieldType string) *SchemaError {
	return &SchemaError{
		Kind:           FieldTypenameDoesNotExistKind,
		ParentTypeName: parentTypeName,
		FieldName:      fieldName,
		FieldType:      fieldType,
		Message:        FieldTypenameDoesNotExistMessage(parentTypeName, fieldName, fieldType),
	}
}

// FieldArgumentTypeDoesNotExistMessage renders the message for a server field argument whose inner
// type name is absent from the schema's defined types.
func FieldArgumentTypeDoesNotExistMessage(argumentName, parentTypeName, fieldName, argumentType string) string {
	return fmt.Sprintf(
		`the type %q, declared as the type of argument "%s" on field "%s.%s", does not exist`,
		argumentType, argumentName, parentTypeName, fieldName,
	)
}

// FieldArgumentTypeDoesNotExist builds the SchemaError for that condition.
func FieldArgumentTypeDoesNotExist(argumentName, parentTypeName, fieldName, argumentType string) *SchemaError {
	return &SchemaError{
		Kind:           FieldArgumentTypeDoesNotExistKind,
		ArgumentName:   argumentName,
		ParentTypeName: parentTypeName,
		FieldName:      fieldName,
		ArgumentType:   argumentType,
		Message:        FieldArgumentTypeDoesNotExistMessage(argumentName, parentTypeName, fieldName, argumentType),
	}
}

// ClientFieldSelectionFieldDoesNotExistMessage renders the message for a selection naming a field
// absent from its parent object, with a "did you mean" clause when suggestions is non-empty.
func ClientFieldSelectionFieldDoesNotExistMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName string, suggestions []string) string {
	return fmt.Sprintf(
		`in the client field "%s.%s", the field "%s" does not exist on "%s".%s`,
		clientFieldParentTypeName, clientFieldName, fieldName, fieldParentTypeName, suggestionClause(suggestions),
	)
}

// ClientFieldSelectionFieldDoesNotExist builds the SchemaError for that condition. candidates is
// the full set of field names known on the selection's parent object; the closest few (by
// util.SuggestionList's lexical distance) are kept as Suggestions.
func ClientFieldSelectionFieldDoesNotExist(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName string, candidates []string) *SchemaError {
	suggestions := util.SuggestionList(fieldName, candidates)
	return &SchemaError{
		Kind:                      ClientFieldSelectionFieldDoesNotExistKind,
		ClientFieldParentTypeName: clientFieldParentTypeName,
		ClientFieldName:           clientFieldName,
		FieldParentTypeName:       fieldParentTypeName,
		FieldName:                 fieldName,
		Suggestions:               suggestions,
		Message:                   ClientFieldSelectionFieldDoesNotExistMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, suggestions),
	}
}

// ClientFieldSelectionFieldIsNotScalarMessage renders the message for a scalar-style selection
// targeting an object-typed server field.
func ClientFieldSelectionFieldIsNotScalarMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, targetType, targetTypeName string) string {
	return fmt.Sprintf(
		`in the client field "%s.%s", the field "%s.%s" is selected as a scalar, but it is %s (%s)`,
		clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, targetType, targetTypeName,
	)
}

// ClientFieldSelectionFieldIsNotScalar builds the SchemaError for that condition.
func ClientFieldSelectionFieldIsNotScalar(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, targetType, targetTypeName string) *SchemaError {
	return &SchemaError{
		Kind:                      ClientFieldSelectionFieldIsNotScalarKind,
		ClientFieldParentTypeName: clientFieldParentTypeName,
		ClientFieldName:           clientFieldName,
		FieldParentTypeName:       fieldParentTypeName,
		FieldName:                 fieldName,
		TargetType:                targetType,
		TargetTypeName:            targetTypeName,
		Message: ClientFieldSelectionFieldIsNotScalarMessage(
			clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, targetType, targetTypeName,
		),
	}
}

// ClientFieldSelectionFieldIsScalarMessage renders the message for a linked-style selection
// targeting a scalar-typed server field.
func ClientFieldSelectionFieldIsScalarMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, fieldType, targetTypeName string) string {
	return fmt.Sprintf(
		`in the client field "%s.%s", the field "%s.%s" is selected as a linked field, but it is %s (%s)`,
		clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, fieldType, targetTypeName,
	)
}

// ClientFieldSelectionFieldIsScalar builds the SchemaError for that condition.
func ClientFieldSelectionFieldIsScalar(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, fieldType, targetTypeName string) *SchemaError {
	return &SchemaError{
		Kind:                      ClientFieldSelectionFieldIsScalarKind,
		ClientFieldParentTypeName: clientFieldParentTypeName,
		ClientFieldName:           clientFieldName,
		FieldParentTypeName:       fieldParentTypeName,
		FieldName:                 fieldName,
		FieldType:                 fieldType,
		TargetTypeName:            targetTypeName,
		Message: ClientFieldSelectionFieldIsScalarMessage(
			clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName, fieldType, targetTypeName,
		),
	}
}

// ClientFieldSelectionFieldIsResolverMessage renders the message for a linked-style selection
// targeting a client-derived field.
func ClientFieldSelectionFieldIsResolverMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName string) string {
	return fmt.Sprintf(
		`in the client field "%s.%s", the field "%s.%s" is a client field and can only be selected as a scalar`,
		clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName,
	)
}

// ClientFieldSelectionFieldIsResolver builds the SchemaError for that condition.
func ClientFieldSelectionFieldIsResolver(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName string) *SchemaError {
	return &SchemaError{
		Kind:                      ClientFieldSelectionFieldIsResolverKind,
		ClientFieldParentTypeName: clientFieldParentTypeName,
		ClientFieldName:           clientFieldName,
		FieldParentTypeName:       fieldParentTypeName,
		FieldName:                 fieldName,
		Message:                   ClientFieldSelectionFieldIsResolverMessage(clientFieldParentTypeName, clientFieldName, fieldParentTypeName, fieldName),
	}
}

// VariableDefinitionInnerTypeDoesNotExistMessage renders the message for a client field variable
// whose declared type name is absent from the schema's defined types.
func VariableDefinitionInnerTypeDoesNotExistMessage(variableName, typeRendered, innerType string) string {
	return fmt.Sprintf(
		`the type %q, the inner type of %q, the type of variable "%s", does not exist`,
		innerType, typeRendered, variableName,
	)
}

// VariableDefinitionInnerTypeDoesNotExist builds the SchemaError for that condition.
func VariableDefinitionInnerTypeDoesNotExist(variableName, typeRendered, innerType string) *SchemaError {
	return &SchemaError{
		Kind:         VariableDefinitionInnerTypeDoesNotExistKind,
		VariableName: variableName,
		TypeRendered: typeRendered,
		InnerType:    innerType,
		Message:      VariableDefinitionInnerTypeDoesNotExistMessage(variableName, typeRendered, innerType),
	}
}

// ErrorValidatingEntrypointDeclarationMessage renders the message for an entrypoint pair that
// doesn't resolve to a client field.
func ErrorValidatingEntrypointDeclarationMessage(message string) string {
	return fmt.Sprintf("error validating entrypoint declaration: %s", message)
}

// ErrorValidatingEntrypointDeclaration builds the SchemaError for that condition.
func ErrorValidatingEntrypointDeclaration(message string) *SchemaError {
	return &SchemaError{
		Kind:    ErrorValidatingEntrypointDeclarationKind,
		Message: ErrorValidatingEntrypointDeclarationMessage(message),
	}
}
