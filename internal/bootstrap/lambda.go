package bootstrap

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

// LambdaHandler is the function signature registered with lambda.Start.
type LambdaHandler func(ctx context.Context, event events.CodePipelineJobEvent) (string, error)

// JobFromEvent extracts the job id and UserParameters from a CodePipeline
// job event.
func JobFromEvent(event events.CodePipelineJobEvent) pipeline.Job {
	job := event.CodePipelineJob
	return pipeline.Job{
		ID:             job.ID,
		UserParameters: job.Data.ActionConfiguration.Configuration.UserParameters,
	}
}

// NewLambdaHandler adapts task to a CodePipeline invoked Lambda. The handler
// never returns an error; the outcome is reported through runner.
func NewLambdaHandler(runner *pipeline.Runner, task pipeline.Task) LambdaHandler {
	return func(ctx context.Context, event events.CodePipelineJobEvent) (string, error) {
		return runner.Handle(ctx, JobFromEvent(event), task), nil
	}
}
