package interfaces

import (
	"context"
)

type PubSubPublisherInterface interface {
	Close()
	PublishMessage(ctx context.Context, message any, attributes map[string]string) (string, error)
}
