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

package validate_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/botobag/isoschema/schema"
	"github.com/botobag/isoschema/schema/validate"
	"github.com/botobag/isoschema/token"
)

var _ = Describe("ValidateAndConstruct", func() {
	It("succeeds on a well-formed schema and resolves its entrypoint", func() {
		b := schema.NewBuilder()
		b.AddScalar("String", "")

		queryID, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		userID, err := b.AddObject(schema.ObjectConfig{Name: "User"})
		Expect(err).NotTo(HaveOccurred())

		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("me"), Type: named("User"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "User", Name: loc("name"), Type: named("String"), IsIdField: true,
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{
					linkedSelection("me", scalarSelection("name")),
				},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		b.AddEntrypoint(schema.EntrypointRef{ParentTypeName: "Query", FieldName: "Greeting"}, schema.NewWithLocation(struct{}{}, token.NoTextSource, token.Span{}))

		validated, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(BeEmpty())
		Expect(validated).NotTo(BeNil())
		Expect(validated.Entrypoints).To(HaveLen(1))
		Expect(validated.Data.Object(queryID).Name).To(Equal("Query"))
		Expect(validated.Data.Object(userID).Name).To(Equal("User"))
	})

	It("reports FieldTypenameDoesNotExist and skips passes B and C", func() {
		b := schema.NewBuilder()
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("me"), Type: named("Missing"),
		})
		Expect(err).NotTo(HaveOccurred())
		// A client field whose own selection would also fail in pass B, to prove pass B never runs.
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("nonexistent")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		validated, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(validated).To(BeNil())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.FieldTypenameDoesNotExistKind))
	})

	It("reports FieldArgumentTypeDoesNotExist", func() {
		b := schema.NewBuilder()
		b.AddScalar("String", "")
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("greet"), Type: named("String"),
			Arguments: []schema.InputValueDefinition[schema.TypeAnnotation[schema.UnvalidatedTypeName]]{
				{Name: loc("locale"), Type: named("Locale")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.FieldArgumentTypeDoesNotExistKind))
	})

	It("reports ClientFieldSelectionFieldDoesNotExist with a suggestion", func() {
		b := schema.NewBuilder()
		b.AddScalar("String", "")
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("name"), Type: named("String"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("nmae")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.ClientFieldSelectionFieldDoesNotExistKind))
		Expect(errs[0].Item.Suggestions).To(ContainElement("name"))
	})

	It("reports ClientFieldSelectionFieldIsNotScalar", func() {
		b := schema.NewBuilder()
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddObject(schema.ObjectConfig{Name: "User"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("me"), Type: named("User"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("me")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.ClientFieldSelectionFieldIsNotScalarKind))
	})

	It("reports ClientFieldSelectionFieldIsScalar", func() {
		b := schema.NewBuilder()
		b.AddScalar("String", "")
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("name"), Type: named("String"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{linkedSelection("name")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.ClientFieldSelectionFieldIsScalarKind))
	})

	It("reports ClientFieldSelectionFieldIsResolver", func() {
		b := schema.NewBuilder()
		b.AddScalar("String", "")
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddServerField(schema.ServerFieldConfig{
			ParentObjectName: "Query", Name: loc("name"), Type: named("String"),
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("DisplayName"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("name")},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{linkedSelection("DisplayName")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.ClientFieldSelectionFieldIsResolverKind))
	})

	It("reports VariableDefinitionInnerTypeDoesNotExist", func() {
		b := schema.NewBuilder()
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Greeting"), Variant: schema.EagerVariant,
			VariableDefinitions: []schema.VariableDefinition[schema.TypeAnnotation[schema.UnvalidatedTypeName]]{
				{Name: loc("locale"), Type: named("Locale")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.VariableDefinitionInnerTypeDoesNotExistKind))
	})

	It("reports an entrypoint that does not resolve to any client field", func() {
		b := schema.NewBuilder()
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		b.AddEntrypoint(schema.EntrypointRef{ParentTypeName: "Query", FieldName: "Missing"}, schema.NewWithLocation(struct{}{}, token.NoTextSource, token.Span{}))

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Item.Kind).To(Equal(validate.ErrorValidatingEntrypointDeclarationKind))
	})

	It("accumulates errors across independently failing client fields", func() {
		b := schema.NewBuilder()
		_, err := b.AddObject(schema.ObjectConfig{Name: "Query"})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("First"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("missingOne")},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = b.AddClientField(schema.ClientFieldConfig{
			ParentObjectName: "Query", Name: loc("Second"), Variant: schema.EagerVariant,
			SelectionSet: &schema.ClientFieldSelectionSet[schema.UnvalidatedSelection]{
				Selections: []schema.UnvalidatedSelection{scalarSelection("missingTwo")},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		_, errs := validate.ValidateAndConstruct(context.Background(), b.Build())
		Expect(errs).To(HaveLen(2))
	})
})
