package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/service/interfaces"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/go-playground/validator/v10"
)

type KafkaConsumerService struct {
	validate *validator.Validate
}

func NewKafkaConsumerService() *KafkaConsumerService {
	return &KafkaConsumerService{validate: validator.New()}
}

// NextApplicationEvent blocks until a decodable application event arrives or ctx is done.
// Undecodable and invalid messages are logged and skipped.
func (k *KafkaConsumerService) NextApplicationEvent(ctx context.Context,
	consumer interfaces.KafkaConsumerInterface) (*models.ApplicationEventMessage, *kafkaclient.Message, error) {

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		msg, err := consumer.Consume()
		if err != nil {
			var kafkaErr kafkaclient.Error
			if errors.As(err, &kafkaErr) && kafkaErr.IsTimeout() {
				continue
			}
			logger.CtxError(ctx, log_messages.KafkaErrorConsuming, err)
			continue
		}

		event, err := k.DecodeApplicationEvent(msg.Value)
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorDeserializingKafkaMessage, err, messageAttrs(msg)...)
			continue
		}
		if event.Target != nil {
			if err := k.validate.Struct(event.Target); err != nil {
				logger.CtxWarn(ctx, log_messages.InvalidApplicationEvent,
					append(messageAttrs(msg), slog.String("error", err.Error()))...)
				continue
			}
		}

		logger.CtxDebug(ctx, "Application event received",
			slog.String("event_id", event.EventID),
			slog.String("message_name", event.MessageName),
		)
		return event, msg, nil
	}
}

func (k *KafkaConsumerService) DecodeApplicationEvent(message []byte) (*models.ApplicationEventMessage, error) {
	var event models.ApplicationEventMessage
	if err := json.Unmarshal(message, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func messageAttrs(msg *kafkaclient.Message) []slog.Attr {
	if msg.TopicPartition.Topic == nil {
		return nil
	}
	return []slog.Attr{
		slog.String("topic", *msg.TopicPartition.Topic),
		slog.Int("partition", int(msg.TopicPartition.Partition)),
		slog.String("offset", msg.TopicPartition.Offset.String()),
	}
}
