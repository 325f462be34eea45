package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/arielf-camacho/cold-stream"

// Instruments records spans and metrics for plays.
type Instruments struct {
	tracer   trace.Tracer
	plays    metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// NewInstruments creates the instruments on the given providers.
func NewInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter(instrumentationName)

	plays, err := meter.Int64Counter("scrabble.plays",
		metric.WithDescription("Number of plays"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scrabble.plays counter: %w", err)
	}

	failures, err := meter.Int64Counter("scrabble.play.failures",
		metric.WithDescription("Number of failed plays"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scrabble.play.failures counter: %w", err)
	}

	duration, err := meter.Float64Histogram("scrabble.play.duration",
		metric.WithDescription("Duration of plays in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scrabble.play.duration histogram: %w", err)
	}

	return &Instruments{
		tracer:   tp.Tracer(instrumentationName),
		plays:    plays,
		failures: failures,
		duration: duration,
	}, nil
}

// NewGlobalInstruments creates the instruments on the global providers.
func NewGlobalInstruments() (*Instruments, error) {
	return NewInstruments(otel.GetTracerProvider(), otel.GetMeterProvider())
}

// StartPlay starts the span of a play over a corpus of the given size. The
// returned function ends it, recording the number of ranks or the failure.
func (i *Instruments) StartPlay(ctx context.Context, corpus int) (context.Context, func(ranks int, err error)) {
	start := time.Now()
	ctx, span := i.tracer.Start(ctx, "scrabble.play",
		trace.WithAttributes(attribute.Int("scrabble.corpus", corpus)),
	)

	return ctx, func(ranks int, err error) {
		defer span.End()

		outcome := attribute.String("outcome", "ok")
		if err != nil {
			outcome = attribute.String("outcome", "error")
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			i.failures.Add(ctx, 1)
		} else {
			span.SetAttributes(attribute.Int("scrabble.ranks", ranks))
		}

		i.plays.Add(ctx, 1, metric.WithAttributes(outcome))
		i.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(outcome))
	}
}
