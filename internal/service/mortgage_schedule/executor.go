package mortgageschedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/pkg/otel"
	storemodels "mortgageschedule/internal/pkg/store/models"
	"mortgageschedule/internal/service/interfaces"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RunResult is what one schedule run reports back to its caller.
type RunResult struct {
	Skipped         bool
	SkipReason      SkipReason
	PaymentsCreated int
	MonthlyPayment  decimal.Decimal
}

type Executor struct {
	gate      *EligibilityGate
	generator *ScheduleGenerator
	sink      interfaces.TraceSink
	tracer    trace.Tracer
}

type Option func(*executorOptions)

type executorOptions struct {
	now    func() time.Time
	tracer trace.Tracer
}

// WithClock fixes the instant used as the schedule start.
func WithClock(now func() time.Time) Option {
	return func(o *executorOptions) { o.now = now }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(o *executorOptions) { o.tracer = tracer }
}

func NewExecutor(store interfaces.RecordStore, sink interfaces.TraceSink, opts ...Option) *Executor {
	o := executorOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.GetTracer()
	}
	return &Executor{
		gate:      NewEligibilityGate(store, sink),
		generator: NewScheduleGenerator(store, sink, o.now),
		sink:      sink,
		tracer:    o.tracer,
	}
}

// Execute handles one triggering event from start to finish. Skips come back as
// a RunResult with Skipped set; every failure is an *ExecutionError.
func (e *Executor) Execute(ctx context.Context, target *models.TargetEntity) (result RunResult, err error) {
	ctx, span := e.tracer.Start(ctx, "mortgage_schedule.Execute")
	defer span.End()

	e.sink.Trace(ctx, log_messages.TraceExecutionStarted)
	defer e.sink.Trace(ctx, log_messages.TraceExecutionCompleted)

	if target != nil {
		span.SetAttributes(attribute.String("application.id", target.ID))
	}

	result, err = e.run(ctx, target)
	if err != nil {
		err = e.wrapFailure(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(
		attribute.Bool("schedule.skipped", result.Skipped),
		attribute.Int("schedule.payments_created", result.PaymentsCreated),
	)
	return result, nil
}

func (e *Executor) run(ctx context.Context, target *models.TargetEntity) (RunResult, error) {
	gateCtx, gateSpan := e.tracer.Start(ctx, "mortgage_schedule.EligibilityGate")
	decision, err := e.gate.Evaluate(gateCtx, target)
	gateSpan.End()
	if err != nil {
		return RunResult{}, err
	}
	if !decision.Proceed() {
		logger.CtxInfo(ctx, "Schedule run skipped", slog.String("reason", string(decision.Reason)))
		return RunResult{Skipped: true, SkipReason: decision.Reason}, nil
	}

	genCtx, genSpan := e.tracer.Start(ctx, "mortgage_schedule.ScheduleGenerator")
	defer genSpan.End()

	schedule, err := e.generator.Generate(genCtx, decision.Application)
	result := RunResult{PaymentsCreated: schedule.PaymentsCreated, MonthlyPayment: schedule.MonthlyPayment}
	if err != nil {
		return result, err
	}

	logger.CtxInfo(ctx, "Schedule run finished",
		slog.String("application_id", decision.Application.ID),
		slog.Int("payments_created", result.PaymentsCreated),
		slog.String("monthly_payment", result.MonthlyPayment.StringFixed(2)),
	)
	return result, nil
}

// wrapFailure traces the cause and returns it wrapped with the matching fixed message.
func (e *Executor) wrapFailure(ctx context.Context, err error) error {
	var fault *storemodels.ServiceFault
	var notFound *storemodels.NotFoundError
	if errors.As(err, &fault) || errors.As(err, &notFound) {
		e.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceServiceFault, err))
		logger.CtxError(ctx, log_messages.ExecutionFailedServiceFault, err)
		return &ExecutionError{Message: log_messages.ExecutionFailedServiceFault, Cause: err}
	}

	e.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceUnexpectedFailure, err))
	logger.CtxError(ctx, log_messages.ExecutionFailedUnexpected, err)
	return &ExecutionError{Message: log_messages.ExecutionFailedUnexpected, Cause: err}
}
