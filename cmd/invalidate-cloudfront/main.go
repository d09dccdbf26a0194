// cmd/invalidate-cloudfront/main.go
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/bootstrap"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/config"
	"github.com/andresuchdata/deploy-pipeline-tasks/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetFormat(cfg.Log.Format)
	logger.SetLevel(cfg.Log.Level)

	app, err := bootstrap.New(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize")
	}

	task := app.Invalidation()
	reporter, err := app.Reporter(bootstrap.ReporterCodePipeline, task.Name())
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize reporter")
	}

	lambda.Start(bootstrap.NewLambdaHandler(app.Runner(reporter), task))
}
