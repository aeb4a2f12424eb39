package consumer

import (
	"time"

	"mortgageschedule/internal/pkg/config"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// PollTimeout bounds a single Consume call so callers can observe cancellation.
const PollTimeout = time.Second

type lowLevelConsumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Consumer lowLevelConsumer
}

type consumerFactory func(cfg *kafka.ConfigMap) (lowLevelConsumer, error)

func defaultKafkaFactory(cfg *kafka.ConfigMap) (lowLevelConsumer, error) {
	return kafka.NewConsumer(cfg)
}

func configMap(kcfg config.KafkaConfig) *kafka.ConfigMap {
	cm := &kafka.ConfigMap{
		"bootstrap.servers":  kcfg.Server,
		"session.timeout.ms": kcfg.SessionTimeoutMs,
		"client.id":          kcfg.ClientID,
		"group.id":           kcfg.GroupID,
		"auto.offset.reset":  "earliest",
		"log_level":          0,
	}
	if kcfg.SecurityProtocol != "" {
		_ = cm.SetKey("security.protocol", kcfg.SecurityProtocol)
	}
	if kcfg.SASLMechanism != "" {
		_ = cm.SetKey("sasl.mechanisms", kcfg.SASLMechanism)
		_ = cm.SetKey("sasl.username", kcfg.SASLUsername)
		_ = cm.SetKey("sasl.password", kcfg.SASLPassword)
	}
	return cm
}

// NewKafkaConsumerWithFactory lets tests swap the librdkafka consumer.
func NewKafkaConsumerWithFactory(kcfg config.KafkaConfig, factory consumerFactory) (*KafkaConsumer, error) {
	consumer, err := factory(configMap(kcfg))
	if err != nil {
		return nil, err
	}
	logger.Info(log_messages.KafkaConsumerCreated)
	return &KafkaConsumer{Consumer: consumer}, nil
}

func NewKafkaConsumer(kcfg config.KafkaConfig) (*KafkaConsumer, error) {
	return NewKafkaConsumerWithFactory(kcfg, defaultKafkaFactory)
}

func (kc *KafkaConsumer) Subscribe(topic string) error {
	return kc.Consumer.SubscribeTopics([]string{topic}, nil)
}

// Consume waits at most PollTimeout. A timeout comes back as a kafka.Error with IsTimeout set.
func (kc *KafkaConsumer) Consume() (*kafka.Message, error) {
	return kc.Consumer.ReadMessage(PollTimeout)
}

func (kc *KafkaConsumer) Close() error {
	logger.Info(log_messages.KafkaConsumerClosed)
	return kc.Consumer.Close()
}
