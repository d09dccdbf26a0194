// Package orchestrator reports job outcomes back to the pipeline engine.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline/types"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

// CodePipelineAPI is the subset of the CodePipeline client used here.
type CodePipelineAPI interface {
	PutJobSuccessResult(ctx context.Context, params *codepipeline.PutJobSuccessResultInput, optFns ...func(*codepipeline.Options)) (*codepipeline.PutJobSuccessResultOutput, error)
	PutJobFailureResult(ctx context.Context, params *codepipeline.PutJobFailureResultInput, optFns ...func(*codepipeline.Options)) (*codepipeline.PutJobFailureResultOutput, error)
}

// CodePipelineReporter reports job results to AWS CodePipeline.
type CodePipelineReporter struct {
	api CodePipelineAPI
}

func NewCodePipelineReporter(api CodePipelineAPI) *CodePipelineReporter {
	return &CodePipelineReporter{api: api}
}

func (r *CodePipelineReporter) ReportSuccess(ctx context.Context, jobID string) error {
	if _, err := r.api.PutJobSuccessResult(ctx, &codepipeline.PutJobSuccessResultInput{
		JobId: aws.String(jobID),
	}); err != nil {
		return fmt.Errorf("put job success result for %s: %w", jobID, err)
	}
	return nil
}

func (r *CodePipelineReporter) ReportFailure(ctx context.Context, jobID string, failure pipeline.Failure) error {
	failureType := types.FailureType(failure.Type)
	if failureType == "" {
		failureType = types.FailureTypeJobFailed
	}

	if _, err := r.api.PutJobFailureResult(ctx, &codepipeline.PutJobFailureResultInput{
		JobId: aws.String(jobID),
		FailureDetails: &types.FailureDetails{
			Message: aws.String(failure.Message),
			Type:    failureType,
		},
	}); err != nil {
		return fmt.Errorf("put job failure result for %s: %w", jobID, err)
	}
	return nil
}

var _ pipeline.Reporter = (*CodePipelineReporter)(nil)
