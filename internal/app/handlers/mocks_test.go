package handlers

import (
	"context"

	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/service/interfaces"
	"mortgageschedule/internal/service/mortgage_schedule"

	kafkaclient "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/mock"
)

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, target *models.TargetEntity) (mortgageschedule.RunResult, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(mortgageschedule.RunResult), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Close() {
	m.Called()
}

func (m *MockPublisher) PublishMessage(ctx context.Context, message any, attributes map[string]string) (string, error) {
	args := m.Called(ctx, message, attributes)
	return args.String(0), args.Error(1)
}

type MockKafkaService struct {
	mock.Mock
}

func (m *MockKafkaService) NextApplicationEvent(ctx context.Context,
	consumer interfaces.KafkaConsumerInterface) (*models.ApplicationEventMessage, *kafkaclient.Message, error) {
	args := m.Called(ctx, consumer)
	event, _ := args.Get(0).(*models.ApplicationEventMessage)
	msg, _ := args.Get(1).(*kafkaclient.Message)
	return event, msg, args.Error(2)
}

type MockKafkaConsumer struct {
	mock.Mock
}

func (m *MockKafkaConsumer) Subscribe(topic string) error {
	return m.Called(topic).Error(0)
}

func (m *MockKafkaConsumer) Consume() (*kafkaclient.Message, error) {
	args := m.Called()
	msg, _ := args.Get(0).(*kafkaclient.Message)
	return msg, args.Error(1)
}

func (m *MockKafkaConsumer) Close() error {
	return m.Called().Error(0)
}

type MockTraceReader struct {
	mock.Mock
}

func (m *MockTraceReader) Lines(ctx context.Context, traceID string) ([]string, error) {
	args := m.Called(ctx, traceID)
	lines, _ := args.Get(0).([]string)
	return lines, args.Error(1)
}
