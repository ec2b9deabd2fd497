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

package validate

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/botobag/isoschema/schema"
)

// Observer receives a notification after every ValidateAndConstruct call completes, tagged with a
// fresh correlation id so a caller can line this core's logs up with the rest of a request's trace
// even though the core itself never logs anything (distilled schema §1's logging is an external
// collaborator).
type Observer interface {
	OnValidationComplete(correlationID uuid.UUID, duration time.Duration, errs []LocatedError)
}

// Option configures an optional, nil-safe instrumentation hook for ValidateAndConstruct. None of
// these affect validation semantics.
type Option func(*options)

type options struct {
	metrics  *Metrics
	tracer   trace.Tracer
	observer Observer
}

// WithMetrics attaches a Metrics recorder (see metrics.go) to the call.
func WithMetrics(m *Metrics) Option { return func(o *options) { o.metrics = m } }

// WithTracer attaches an OpenTelemetry tracer; ValidateAndConstruct starts one span per call under
// it, named "schema/validate.Run".
func WithTracer(t trace.Tracer) Option { return func(o *options) { o.tracer = t } }

// WithObserver attaches an Observer notified once per call with a fresh correlation id.
func WithObserver(ob Observer) Option { return func(o *options) { o.observer = ob } }

// ValidateAndConstruct is the core's single entry point (distilled schema §6): it resolves
// unvalidated into a fully validated schema, or the complete, deterministically ordered list of
// errors found across every independent validation unit.
//
// State machine (distilled schema §4.7):
//  1. entrypoint validation, accumulated;
//  2. pass A — on failure, every later step is skipped and the errors accumulated so far are
//     returned immediately, since pass B's field-name classification depends on defined_types
//     having survived pass A unchallenged;
//  3. pass B — runs whenever pass A succeeded, regardless of whether entrypoint validation found
//     anything; its own failures are accumulated, not fatal to running pass C's precondition check;
//  4. pass C — runs only if steps 1-3 produced no errors at all;
//  5. assembly — constructed only if the error list is still empty.
func ValidateAndConstruct(ctx context.Context, unvalidated schema.UnvalidatedSchema, opts ...Option) (*schema.ValidatedSchema, []LocatedError) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	correlationID := uuid.New()
	start := time.Now()

	if o.tracer != nil {
		var span trace.Span
		_, span = o.tracer.Start(ctx, "schema/validate.Run",
			trace.WithAttributes(attribute.String("correlation_id", correlationID.String())),
		)
		defer span.End()
	}

	data := unvalidated.Data

	var errs []LocatedError

	entrypoints, entrypointErrs := ResolveEntrypoints(data)
	errs = append(errs, entrypointErrs...)

	serverFields, passAErrs := RunPassA(data)
	errs = append(errs, passAErrs...)
	if len(passAErrs) > 0 {
		return finish(nil, errs, &o, correlationID, start)
	}

	clientFields, passBErrs := RunPassB(data)
	errs = append(errs, passBErrs...)

	if len(errs) > 0 {
		return finish(nil, errs, &o, correlationID, start)
	}

	objects := RunPassC(data)
	validatedData := schema.NewValidatedData(objects, data.Scalars(), serverFields, clientFields, data.DefinedTypes)
	validated := &schema.ValidatedSchema{Data: validatedData, Entrypoints: entrypoints}

	return finish(validated, errs, &o, correlationID, start)
}

func finish(validated *schema.ValidatedSchema, errs []LocatedError, o *options, correlationID uuid.UUID, start time.Time) (*schema.ValidatedSchema, []LocatedError) {
	sort.Slice(errs, func(i, j int) bool { return errs[i].Before(errs[j]) })

	duration := time.Since(start)
	o.metrics.observe(start, errs)
	if o.observer != nil {
		o.observer.OnValidationComplete(correlationID, duration, errs)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return validated, nil
}
