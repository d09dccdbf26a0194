package orchestrator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

// LogReporter writes outcomes to the log instead of notifying an
// orchestrator. Used for dry runs from the CLI.
type LogReporter struct {
	log zerolog.Logger
}

func NewLogReporter(log zerolog.Logger) *LogReporter {
	return &LogReporter{log: log}
}

func (r *LogReporter) ReportSuccess(_ context.Context, jobID string) error {
	r.log.Info().Str("job_id", jobID).Str("outcome", "success").Msg("job result")
	return nil
}

func (r *LogReporter) ReportFailure(_ context.Context, jobID string, failure pipeline.Failure) error {
	r.log.Warn().
		Str("job_id", jobID).
		Str("outcome", "failure").
		Str("type", failure.Type).
		Str("failure_message", failure.Message).
		Msg("job result")
	return nil
}

var _ pipeline.Reporter = (*LogReporter)(nil)
