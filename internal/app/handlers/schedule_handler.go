package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/service/interfaces"
	"mortgageschedule/internal/service/mortgage_schedule"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const notificationEventType = "ScheduleGenerated"

type ScheduleExecutor interface {
	Execute(ctx context.Context, target *models.TargetEntity) (mortgageschedule.RunResult, error)
}

// ScheduleHandler feeds application events, from Kafka or HTTP, into the schedule executor.
type ScheduleHandler struct {
	executor  ScheduleExecutor
	publisher interfaces.PubSubPublisherInterface
	now       func() time.Time
}

// NewScheduleHandler accepts a nil publisher, in which case no notification is sent.
func NewScheduleHandler(executor ScheduleExecutor, publisher interfaces.PubSubPublisherInterface) *ScheduleHandler {
	return &ScheduleHandler{executor: executor, publisher: publisher, now: time.Now}
}

// ConsumeApplicationEvents runs until ctx is cancelled or the consumer service fails.
func (h *ScheduleHandler) ConsumeApplicationEvents(
	ctx context.Context,
	kafkaService interfaces.KafkaConsumerServiceInterface,
	consumer interfaces.KafkaConsumerInterface,
) error {
	for {
		event, msg, err := kafkaService.NextApplicationEvent(ctx, consumer)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.CtxError(ctx, log_messages.KafkaErrorConsuming, err)
			return err
		}

		traceCtx := h.setupTraceContext(ctx, event, msg)
		_, _ = h.process(traceCtx, event)
	}
}

func (h *ScheduleHandler) setupTraceContext(ctx context.Context, event *models.ApplicationEventMessage, msg *kafkaclient.Message) context.Context {
	traceID := uuid.New().String()
	traceCtx := logger.WithTraceID(ctx, traceID)

	logger.CtxInfo(traceCtx, "New schedule request started",
		slog.String("event_id", event.EventID),
		slog.String("message_name", event.MessageName),
	)
	if msg != nil {
		logger.CtxDebug(traceCtx, "Kafka message", slog.String("message", string(msg.Value)))
	}
	return traceCtx
}

func (h *ScheduleHandler) process(ctx context.Context, event *models.ApplicationEventMessage) (mortgageschedule.RunResult, error) {
	result, err := h.executor.Execute(ctx, event.Target)
	if err != nil {
		logger.CtxError(ctx, "Error while generating mortgage schedule", err)
		return result, err
	}

	if result.Skipped {
		logger.CtxInfo(ctx, "Mortgage schedule skipped", slog.String("reason", string(result.SkipReason)))
		return result, nil
	}

	if result.PaymentsCreated > 0 {
		h.notify(ctx, event.Target.ID, result)
	}
	logger.CtxInfo(ctx, "Mortgage schedule processing complete")
	return result, nil
}

func (h *ScheduleHandler) notify(ctx context.Context, applicationID string, result mortgageschedule.RunResult) {
	if h.publisher == nil {
		return
	}

	notification := models.ScheduleGeneratedNotification{
		TraceID:         logger.GetTraceID(ctx),
		ApplicationID:   applicationID,
		PaymentsCreated: result.PaymentsCreated,
		MonthlyPayment:  result.MonthlyPayment.StringFixed(2),
		GeneratedAt:     h.now().UTC(),
	}
	attributes := map[string]string{
		"applicationId": applicationID,
		"eventType":     notificationEventType,
	}

	messageID, err := h.publisher.PublishMessage(ctx, notification, attributes)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorPublishingNotification, err, slog.String("application_id", applicationID))
		return
	}
	logger.CtxInfo(ctx, "Schedule notification published", slog.String("message_id", messageID))
}

// TriggerSchedule runs one schedule synchronously for the posted event.
func (h *ScheduleHandler) TriggerSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	var event models.ApplicationEventMessage
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.CtxWarn(ctx, log_messages.InvalidApplicationEvent, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	traceID := logger.GetTraceID(ctx)
	if traceID == "" {
		traceID = uuid.New().String()
		ctx = logger.WithTraceID(ctx, traceID)
	}

	result, err := h.process(ctx, &event)
	if err != nil {
		var execErr *mortgageschedule.ExecutionError
		message := err.Error()
		if errors.As(err, &execErr) {
			message = execErr.Message
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"traceId":         traceID,
			"error":           message,
			"paymentsCreated": result.PaymentsCreated,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"traceId":         traceID,
		"skipped":         result.Skipped,
		"skipReason":      string(result.SkipReason),
		"paymentsCreated": result.PaymentsCreated,
		"monthlyPayment":  result.MonthlyPayment.StringFixed(2),
	})
}
