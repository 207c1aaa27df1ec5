package server

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
	"github.com/vango-dev/htmlcomponent/pkg/document"
)

const (
	tracerName = "github.com/vango-dev/htmlcomponent/pkg/server"
	spanName   = "htmlc.compile"

	sourceHTTP = "http"
	sourceWS   = "ws"
)

// compile decodes data, renders it with extra attributes, and records the
// span, metrics and log line for the attempt.
func (s *Server) compile(ctx context.Context, source string, data []byte, extra []string) (string, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("htmlc.source", source),
			attribute.Int("htmlc.input_bytes", len(data)),
		),
	)
	defer span.End()

	out, root, err := render(data, extra)
	elapsed := time.Since(start)

	if root != "" {
		span.SetAttributes(attribute.String("htmlc.element", root))
	}
	if err != nil {
		e := errors.FromError(err, errors.CodeServerBody)
		span.RecordError(err)
		span.SetStatus(codes.Error, e.Code)
		s.metrics.observe(source, elapsed.Seconds(), 0, e.Code)
		s.logger.WarnContext(ctx, "document rejected",
			"source", source,
			"code", e.Code,
			"error", e.FormatCompact(),
		)
		return "", err
	}

	span.SetAttributes(attribute.Int("htmlc.output_bytes", len(out)))
	s.metrics.observe(source, elapsed.Seconds(), len(out), "")
	s.logger.DebugContext(ctx, "compiled",
		"source", source,
		"element", root,
		"input_bytes", len(data),
		"output_bytes", len(out),
		"duration", elapsed,
	)
	return out, nil
}

func render(data []byte, extra []string) (out, root string, err error) {
	n, err := document.Parse(data)
	if err != nil {
		return "", "", err
	}
	if el, ok := n.(*component.Element); ok {
		root = el.GetElement()
	}
	out, err = n.Compile(extra...)
	return out, root, err
}
