package interfaces

import (
	"context"

	sm "mortgageschedule/internal/pkg/models"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

type KafkaConsumerInterface interface {
	Subscribe(topic string) error
	Consume() (*kafkaclient.Message, error)
	Close() error
}

type KafkaConsumerServiceInterface interface {
	NextApplicationEvent(ctx context.Context,
		consumer KafkaConsumerInterface) (*sm.ApplicationEventMessage, *kafkaclient.Message, error)
}
