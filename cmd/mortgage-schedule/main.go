package main

import (
	"context"
	"os"

	"mortgageschedule/internal/app/runtime"
	"mortgageschedule/internal/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Init("info")

	app, err := runtime.New(ctx)
	if err != nil {
		logger.CtxError(ctx, "failed to initialize app", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.CtxError(ctx, "app stopped with error", err)
		os.Exit(1)
	}
}
