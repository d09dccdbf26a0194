package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/mocks"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

type taskFunc func(ctx context.Context, userParameters string) error

func (f taskFunc) Name() string { return "test-task" }

func (f taskFunc) Run(ctx context.Context, userParameters string) error {
	return f(ctx, userParameters)
}

func TestRunnerReportsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportSuccess(gomock.Any(), "job-1").Return(nil).Times(1)

	var gotParams string
	task := taskFunc(func(_ context.Context, userParameters string) error {
		gotParams = userParameters
		return nil
	})

	marker := pipeline.NewRunner(reporter, zerolog.Nop()).Handle(context.Background(), pipeline.Job{ID: "job-1", UserParameters: `{"a":"b"}`}, task)

	assert.Equal(t, pipeline.CompletionMarker, marker)
	assert.Equal(t, `{"a":"b"}`, gotParams)
}

func TestRunnerReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportFailure(gomock.Any(), "job-1", pipeline.Failure{
		Message: `failed to copy objects from bucket "a" to bucket "b"`,
		Type:    pipeline.FailureTypeJobFailed,
	}).Return(nil).Times(1)

	var buf bytes.Buffer
	task := taskFunc(func(context.Context, string) error {
		return pipeline.OperationError("copy objects", `from bucket "a" to bucket "b"`, errors.New("AccessDenied"))
	})

	marker := pipeline.NewRunner(reporter, zerolog.New(&buf)).Handle(context.Background(), pipeline.Job{ID: "job-1"}, task)

	assert.Equal(t, pipeline.CompletionMarker, marker)
	assert.Contains(t, buf.String(), `"kind":"OperationError"`)
	assert.Contains(t, buf.String(), "AccessDenied")
	assert.Contains(t, buf.String(), `"job_id":"job-1"`)
}

func TestRunnerRecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportFailure(gomock.Any(), "job-1", pipeline.Failure{
		Message: "failed to run test-task",
		Type:    pipeline.FailureTypeJobFailed,
	}).Return(nil).Times(1)

	task := taskFunc(func(context.Context, string) error {
		var m map[string]int
		m["boom"]++
		return nil
	})

	var marker string
	assert.NotPanics(t, func() {
		marker = pipeline.NewRunner(reporter, zerolog.Nop()).Handle(context.Background(), pipeline.Job{ID: "job-1"}, task)
	})
	assert.Equal(t, pipeline.CompletionMarker, marker)
}

type describedTask struct {
	taskFunc
}

func (describedTask) Describe(userParameters string) string {
	return "with " + userParameters
}

func TestRunnerPanicNamesJobSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportFailure(gomock.Any(), "job-1", pipeline.Failure{
		Message: `failed to run test-task with {"a":"b"}`,
		Type:    pipeline.FailureTypeJobFailed,
	}).Return(nil).Times(1)

	task := describedTask{taskFunc(func(context.Context, string) error {
		panic("nil client")
	})}

	marker := pipeline.NewRunner(reporter, zerolog.Nop()).Handle(context.Background(),
		pipeline.Job{ID: "job-1", UserParameters: `{"a":"b"}`}, task)

	assert.Equal(t, pipeline.CompletionMarker, marker)
}

func TestRunnerIgnoresReporterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportSuccess(gomock.Any(), "job-1").Return(errors.New("throttled")).Times(1)

	var buf bytes.Buffer
	task := taskFunc(func(context.Context, string) error { return nil })

	marker := pipeline.NewRunner(reporter, zerolog.New(&buf)).Handle(context.Background(), pipeline.Job{ID: "job-1"}, task)

	assert.Equal(t, pipeline.CompletionMarker, marker)
	assert.Contains(t, buf.String(), "failed to report job success")
}

func TestRunnerPanicInReporterIsNotReportedTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportSuccess(gomock.Any(), "job-1").DoAndReturn(func(context.Context, string) error {
		panic("reporter exploded")
	}).Times(1)

	task := taskFunc(func(context.Context, string) error { return nil })

	marker := pipeline.NewRunner(reporter, zerolog.Nop()).Handle(context.Background(), pipeline.Job{ID: "job-1"}, task)
	assert.Equal(t, pipeline.CompletionMarker, marker)
}

func TestRunnerAttachesLoggerToContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ReportSuccess(gomock.Any(), "job-9").Return(nil)

	var buf bytes.Buffer
	task := taskFunc(func(ctx context.Context, _ string) error {
		zerolog.Ctx(ctx).Info().Msg("inside task")
		return nil
	})

	pipeline.NewRunner(reporter, zerolog.New(&buf)).Handle(context.Background(), pipeline.Job{ID: "job-9"}, task)

	assert.Contains(t, buf.String(), `"task":"test-task","job_id":"job-9","message":"inside task"`)
}
