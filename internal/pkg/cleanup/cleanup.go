package cleanup

import (
	"context"
	"net/http"

	mongodb "mortgageschedule/internal/pkg/db/mongo"
	redisdb "mortgageschedule/internal/pkg/db/redis"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/pkg/otel"
	"mortgageschedule/internal/service/interfaces"
)

// Resources lists everything main opened. Nil fields are skipped.
type Resources struct {
	Server       *http.Server
	Consumer     interfaces.KafkaConsumerInterface
	Publisher    interfaces.PubSubPublisherInterface
	Mongo        *mongodb.MongoClient
	Redis        *redisdb.RedisClient
	OtelShutdown otel.ShutdownFunc
}

// CleanupResources releases resources in reverse dependency order: stop taking
// work first, then flush outbound messages, then close the stores.
func CleanupResources(ctx context.Context, r Resources) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	if r.Server != nil {
		if err := r.Server.Shutdown(ctx); err != nil {
			logger.CtxError(ctx, "Failed to shut down HTTP server", err)
		}
	}
	if r.Consumer != nil {
		if err := r.Consumer.Close(); err != nil {
			logger.CtxError(ctx, "Failed to close Kafka consumer", err)
		}
	}
	if r.Publisher != nil {
		r.Publisher.Close()
	}
	if r.Mongo != nil && r.Mongo.Client != nil {
		if err := mongodb.Disconnect(r.Mongo.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
	if r.Redis != nil && r.Redis.Client != nil {
		if err := redisdb.Disconnect(r.Redis.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
	if r.OtelShutdown != nil {
		if err := r.OtelShutdown(ctx); err != nil {
			logger.CtxError(ctx, "Failed to shut down tracer provider", err)
		}
	}

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}
