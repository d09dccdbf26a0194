package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Runner drives a Task through one job and reports its outcome exactly once.
type Runner struct {
	reporter Reporter
	log      zerolog.Logger
}

// NewRunner creates a Runner reporting through reporter.
func NewRunner(reporter Reporter, log zerolog.Logger) *Runner {
	return &Runner{
		reporter: reporter,
		log:      log,
	}
}

// Handle runs task for job, reports success or failure, and returns
// CompletionMarker. It never panics and never returns the task error.
func (r *Runner) Handle(ctx context.Context, job Job, task Task) (marker string) {
	log := r.log.With().
		Str("task", task.Name()).
		Str("job_id", job.ID).
		Logger()
	ctx = log.WithContext(ctx)

	reported := false
	report := func(err error) {
		if reported {
			return
		}
		reported = true
		r.report(ctx, log, job.ID, err)
	}

	defer func() {
		marker = CompletionMarker
		if rec := recover(); rec != nil {
			err := errors.WithStack(fmt.Errorf("panic: %v", rec))
			report(&Error{
				Kind:    KindOperation,
				Op:      "run " + task.Name(),
				Subject: describe(task, job.UserParameters),
				Err:     err,
			})
		}
	}()

	log.Info().Msg("job started")
	report(task.Run(ctx, job.UserParameters))

	return
}

func (r *Runner) report(ctx context.Context, log zerolog.Logger, jobID string, err error) {
	if err == nil {
		if rerr := r.reporter.ReportSuccess(ctx, jobID); rerr != nil {
			log.Error().Err(rerr).Msg("failed to report job success")
			return
		}
		log.Info().Msg("job succeeded")
		return
	}

	failure := Failure{
		Message: failureMessage(err),
		Type:    FailureTypeJobFailed,
	}
	log.Error().
		Stack().
		Err(err).
		Str("kind", string(KindOf(err))).
		Str("failure_message", failure.Message).
		Msg("job failed")

	if rerr := r.reporter.ReportFailure(ctx, jobID, failure); rerr != nil {
		log.Error().Err(rerr).Msg("failed to report job failure")
	}
}

func describe(task Task, userParameters string) (subject string) {
	d, ok := task.(Describer)
	if !ok {
		return ""
	}
	defer func() {
		if recover() != nil {
			subject = ""
		}
	}()
	return d.Describe(userParameters)
}

func failureMessage(err error) string {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Message()
	}
	return "task failed"
}
