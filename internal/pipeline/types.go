package pipeline

import (
	"context"
)

// CompletionMarker is returned by every invocation regardless of outcome.
// Only the Reporter carries success or failure.
const CompletionMarker = "Done"

// FailureTypeJobFailed is the failure type reported to the orchestrator.
const FailureTypeJobFailed = "JobFailed"

// Job is one orchestrator invocation of a task.
type Job struct {
	ID             string
	UserParameters string
}

// Failure describes a failed job for the orchestrator.
type Failure struct {
	Message string
	Type    string
}

// Reporter notifies the orchestrator about the outcome of a job.
type Reporter interface {
	ReportSuccess(ctx context.Context, jobID string) error
	ReportFailure(ctx context.Context, jobID string, failure Failure) error
}

// Task is one pipeline step. Run extracts its parameters from the raw
// UserParameters string and performs the operation. Returned errors should
// be *Error values.
type Task interface {
	Name() string
	Run(ctx context.Context, userParameters string) error
}

// Describer is implemented by tasks that can name the resources of a job
// from its raw UserParameters. The Runner uses it when a task panics.
type Describer interface {
	Describe(userParameters string) string
}
