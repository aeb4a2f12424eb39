package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

type PublishResult interface {
	Get(ctx context.Context) (string, error)
}

type Topic interface {
	Publish(ctx context.Context, msg *pubsub.Message) PublishResult
	Stop()
}

type topicAdapter struct {
	topic *pubsub.Topic
}

func (t *topicAdapter) Publish(ctx context.Context, msg *pubsub.Message) PublishResult {
	return t.topic.Publish(ctx, msg)
}

func (t *topicAdapter) Stop() {
	t.topic.Stop()
}

type ClientFactory func(ctx context.Context, projectID string, opts ...option.ClientOption) (*pubsub.Client, error)

// Publisher sends JSON payloads to a single topic.
type Publisher struct {
	Client *pubsub.Client
	Topic  Topic
}

func NewPublisher(ctx context.Context, projectID, topicID string, factory ClientFactory, opts ...option.ClientOption) (*Publisher, error) {
	if topicID == "" {
		return nil, fmt.Errorf(log_messages.TopicDoesNotExists, topicID)
	}
	client, err := factory(ctx, projectID, opts...)
	if err != nil {
		return nil, err
	}
	return &Publisher{Client: client, Topic: &topicAdapter{topic: client.Topic(topicID)}}, nil
}

// Close flushes pending messages and releases the client.
func (p *Publisher) Close() {
	if p.Topic != nil {
		p.Topic.Stop()
	}
	if p.Client == nil {
		return
	}
	if err := p.Client.Close(); err != nil {
		logger.Error("failed to close pubsub client", err)
	}
}

func (p *Publisher) PublishMessage(ctx context.Context, message any, attributes map[string]string) (string, error) {
	data, err := json.Marshal(message)
	if err != nil {
		logger.CtxError(ctx, "failed to marshal pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorMarshallingMessage, err)
	}

	result := p.Topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes})

	id, err := result.Get(ctx)
	if err != nil {
		logger.CtxError(ctx, "failed to publish pubsub message", err)
		return "", fmt.Errorf(log_messages.ErrorInMessagePublishing, err)
	}
	return id, nil
}
