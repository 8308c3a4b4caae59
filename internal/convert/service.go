package convert

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dunamismax/imgconvert/internal/codec"
	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/id"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service converts one local image file per call. It never returns an error:
// every problem becomes a failure result.
type Service struct {
	fetcher Fetcher
	codec   codec.Codec
	emitter Emitter
	metrics *metrics
	tracer  trace.Tracer
	newID   func() string
}

func NewService(opts codec.Options) (*Service, error) {
	c, err := codec.New(opts)
	if err != nil {
		return nil, fmt.Errorf("build codec: %w", err)
	}

	return &Service{
		fetcher: LocalFileFetcher{},
		codec:   c,
		emitter: LocalFileEmitter{},
		metrics: newMetrics(),
		tracer:  otel.Tracer("imgconvert/convert"),
		newID:   id.New,
	}, nil
}

func (s *Service) MetricsHandler() http.Handler {
	return s.metrics.Handler()
}

func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) domain.ConversionResult {
	startedAt := time.Now()
	conversionID := s.newID()

	ctx, span := s.tracer.Start(ctx, "convert.image")
	span.SetAttributes(
		attribute.String("conversion.id", conversionID),
		attribute.String("conversion.source", req.SourcePath),
		attribute.String("conversion.format", req.TargetFormat.String()),
	)
	defer span.End()

	var result domain.ConversionResult
	output, written, err := s.run(ctx, req)
	if err != nil {
		result = domain.Failed(conversionID, req, fmt.Errorf("convert %s: %w", req.SourcePath, err), time.Since(startedAt))
		span.RecordError(err)
		span.SetStatus(codes.Error, "conversion failed")
	} else {
		result = domain.Succeeded(conversionID, req, output, written, time.Since(startedAt))
		span.SetAttributes(attribute.String("conversion.output", output))
		span.SetStatus(codes.Ok, "converted")
	}
	span.SetAttributes(attribute.String("conversion.outcome", result.Outcome))

	s.metrics.conversionsTotal.WithLabelValues(req.TargetFormat.String(), result.Outcome).Inc()
	s.metrics.conversionDuration.WithLabelValues(req.TargetFormat.String(), result.Outcome).Observe(result.Duration.Seconds())
	s.metrics.outputBytesTotal.Add(float64(result.Bytes))

	return result
}

func (s *Service) run(ctx context.Context, req domain.ConversionRequest) (string, int, error) {
	if err := req.Validate(); err != nil {
		return "", 0, err
	}

	destination := DestinationPath(req.SourcePath, req.TargetFormat)

	source, err := s.fetcher.Fetch(ctx, req.SourcePath)
	if err != nil {
		return "", 0, fmt.Errorf("fetch stage: %w", err)
	}

	encoded, err := s.codec.Transcode(ctx, source, req.TargetFormat)
	if err != nil {
		return "", 0, fmt.Errorf("transcode stage: %w", err)
	}

	if err := s.emitter.Emit(ctx, destination, encoded); err != nil {
		return "", 0, fmt.Errorf("emit stage: %w", err)
	}

	return destination, len(encoded), nil
}
