package router

import (
	"context"

	"mortgageschedule/internal/app/handlers"
	"mortgageschedule/internal/app/middleware"
	"mortgageschedule/internal/pkg/logger"
	"mortgageschedule/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	HealthCheckPath  = "/mortgage-schedule/health"
	TriggerEventPath = "/mortgage-applications/events"
	TraceLookupPath  = "/mortgage-applications/traces/:traceId"
)

// Dependencies groups what the router wires into handlers. Consumer and
// KafkaService may be nil, in which case no background consumer is started.
type Dependencies struct {
	ServiceName     string
	ScheduleHandler *handlers.ScheduleHandler
	TraceReader     interfaces.TraceReader
	KafkaService    interfaces.KafkaConsumerServiceInterface
	Consumer        interfaces.KafkaConsumerInterface
}

func SetupRouter(ctx context.Context, deps Dependencies) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(otelgin.Middleware(deps.ServiceName))
	server.Use(middleware.AttachTraceID())

	if deps.Consumer != nil && deps.KafkaService != nil {
		go func() {
			err := deps.ScheduleHandler.ConsumeApplicationEvents(ctx, deps.KafkaService, deps.Consumer)
			if err != nil {
				logger.CtxError(ctx, "application event consumer stopped", err)
			}
		}()
	}

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET(HealthCheckPath, healthCheckHandler.HealthCheck)

	server.POST(TriggerEventPath, deps.ScheduleHandler.TriggerSchedule)

	traceHandler := handlers.NewTraceHandler(deps.TraceReader)
	server.GET(TraceLookupPath, traceHandler.GetTrace)

	return server
}
