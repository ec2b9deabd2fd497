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

	"github.com/botobag/isoschema/token"
	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually the package and method in which an error originated, such as
// "schema/validate.resolveFieldType". Adapted from the teacher's graphql.Op.
type Op string

// ErrKind classifies an Error for callers that want to branch on error class without string
// matching Message.
type ErrKind uint8

// Enumeration of ErrKind.
const (
	ErrKindOther      ErrKind = iota // Unclassified error; not printed in the error message.
	ErrKindValidation                // A schema validation error (spec.md §7's taxonomy).
	ErrKindInternal                  // An invariant violation — an implementer bug, never user error.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindValidation:
		return "validation error"
	case ErrKindInternal:
		return "internal error"
	}
	return "other error"
}

// ErrorLocation is a human-facing (line, column), both 1-indexed, paired with the name of the
// source it came from. It is the rendering of a WithLocation[T]'s (Source, Location) against a
// caller-supplied source registry.
type ErrorLocation struct {
	Source string
	Line   uint
	Column uint
}

// Error describes an error encountered while validating a schema. It mirrors the shape of the
// teacher's graphql.Error (Message / Locations / Err / Op / Kind) without the execution-only Path
// and Extensions fields, which don't apply to a core that never executes a query.
type Error struct {
	Message   string
	Locations []ErrorLocation
	Err       error
	Op        Op
	Kind      ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an Error from a message plus any of ErrorLocation, []ErrorLocation, error, Op or
// ErrKind, in the spirit of upspin.io/errors (same inspiration the teacher cites).
func NewError(message string, args ...interface{}) *Error {
	e := &Error{Message: message}
	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorLocation:
			e.Locations = []ErrorLocation{arg}
		case []ErrorLocation:
			e.Locations = arg
		case error:
			e.Err = arg
		case Op:
			e.Op = arg
		case ErrKind:
			e.Kind = arg
		default:
			panic(fmt.Sprintf("schema.NewError: unsupported argument type %T", arg))
		}
	}
	return e
}

// WrapError builds an Error with message that wraps err.
func WrapError(err error, message string) *Error {
	return NewError(message, err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Op) > 0 {
		msg = string(e.Op) + ": " + msg
	}
	if len(e.Locations) > 0 {
		msg = fmt.Sprintf("%s at %+v", msg, e.Locations)
	}
	if e.Kind != ErrKindOther {
		msg = msg + ": " + e.Kind.String()
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the wrapped error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errors wraps a list of *Error. Deliberately not a bare []*Error alias: an empty Errors should
// read as "no error" via HaveOccurred() rather than relying on a nil-vs-empty-slice distinction at
// every call site (same rationale as the teacher's graphql.Errors).
type Errors struct {
	Errors []*Error
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors { return Errors{} }

// HaveOccurred reports whether any error has been recorded.
func (errs Errors) HaveOccurred() bool { return len(errs.Errors) > 0 }

// Append appends errs to the receiver in place.
func (errs *Errors) Append(e ...*Error) {
	errs.Errors = append(errs.Errors, e...)
}

// AppendErrors appends every Error in each given Errors to the receiver in place.
func (errs *Errors) AppendErrors(others ...Errors) {
	for _, other := range others {
		errs.Errors = append(errs.Errors, other.Errors...)
	}
}

// Emplace constructs an Error from message and args and appends it.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// SourceRegistry resolves a token.TextSourceId back to the token.Source that produced it, so a
// byte Span can be turned into a human-facing line/column. A driver that assembles an
// UnvalidatedSchema from several parsed files keeps one of these around; it is not part of the
// validation core itself (spec.md §6 treats parsing/sources as an external collaborator).
type SourceRegistry interface {
	TextSource(token.TextSourceId) (*token.Source, bool)
}

// ErrorLocationOf renders a WithLocation's position as an ErrorLocation, using registry to resolve
// the owning source's name and to translate the byte offset into a line/column. If registry is nil
// or doesn't know the source, the location is reported on line 1 with the byte offset plus one as
// the column, and no source name.
func ErrorLocationOf[T any](w WithLocation[T], registry SourceRegistry) ErrorLocation {
	if registry != nil {
		if src, ok := registry.TextSource(w.Source); ok {
			info := src.LocationInfoOf(w.Location.Start)
			return ErrorLocation{Source: src.Name, Line: info.Line, Column: info.Column}
		}
	}
	return ErrorLocation{Line: 1, Column: uint(w.Location.Start) + 1}
}

// MarshalJSON implements json.Marshaler, matching the field names the teacher's graphql.Error
// produces so downstream tooling (an editor extension, an LSP-style diagnostics feed) that already
// knows how to render { message, locations } objects can consume this core's errors unmodified.
func (e *Error) MarshalJSON() ([]byte, error) {
	type location struct {
		Source string `json:"source,omitempty"`
		Line   uint   `json:"line"`
		Column uint   `json:"column"`
	}
	out := struct {
		Message   string     `json:"message"`
		Locations []location `json:"locations,omitempty"`
	}{Message: e.Message}
	for _, l := range e.Locations {
		out.Locations = append(out.Locations, location{Source: l.Source, Line: l.Line, Column: l.Column})
	}
	return jsoniter.Marshal(out)
}

// MarshalJSON implements json.Marshaler for the whole error list.
func (errs Errors) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(errs.Errors)
}
