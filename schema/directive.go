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

// Argument is a single name/value pair attached to a directive or a field selection. Values are
// carried as opaque source text; this core never type-checks argument values (spec.md §9's open
// question on argument-value type-checking).
type Argument struct {
	Name  WithLocation[string]
	Value WithLocation[string]
}

// Directive is a structural, unexecuted `@name(args...)` annotation adapted from the teacher's
// graphql.Directive. Schema objects carry a directive list through every pass unchanged; this core
// does no directive-specific validation of its own.
type Directive struct {
	Name WithLocation[string]
	Args []Argument
}
