/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package balancer

import (
	"context"

	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// tracer wraps an otel tracer. Spans are started for the assignment
// pass, the balance pass, the OOB scan and each per-server OOB RPC;
// catalog queries and inner-balancer calls run inside the enclosing
// pass's span without a span of their own, and name resolution in the
// Pool Grouper is not traced.
type tracer struct {
	t oteltrace.Tracer
}

func newTracer(name string) tracer {
	return tracer{t: otel.Tracer("github.com/tablestore/host-regex-balancer/" + name)}
}

type span struct {
	s oteltrace.Span
}

func (s span) end() {
	if s.s != nil {
		s.s.End()
	}
}

func (t tracer) start(ctx context.Context, spanName string) (context.Context, span) {
	ctx, s := t.t.Start(ctx, spanName)
	return ctx, span{s: s}
}
