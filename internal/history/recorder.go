package history

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

// Recorder forwards outcomes to the wrapped Reporter and then stores them.
// A storage failure is logged and does not affect the reported outcome.
type Recorder struct {
	next  pipeline.Reporter
	store Store
	task  string
	log   zerolog.Logger
	now   func() time.Time
}

func NewRecorder(next pipeline.Reporter, store Store, task string, log zerolog.Logger) *Recorder {
	return &Recorder{
		next:  next,
		store: store,
		task:  task,
		log:   log,
		now:   time.Now,
	}
}

func (r *Recorder) ReportSuccess(ctx context.Context, jobID string) error {
	if err := r.next.ReportSuccess(ctx, jobID); err != nil {
		return err
	}
	r.save(ctx, Entry{JobID: jobID, Status: StatusSucceeded})
	return nil
}

func (r *Recorder) ReportFailure(ctx context.Context, jobID string, failure pipeline.Failure) error {
	if err := r.next.ReportFailure(ctx, jobID, failure); err != nil {
		return err
	}
	r.save(ctx, Entry{JobID: jobID, Status: StatusFailed, Message: failure.Message})
	return nil
}

func (r *Recorder) save(ctx context.Context, entry Entry) {
	entry.Task = r.task
	entry.ReportedAt = r.now().UTC()
	if err := r.store.Save(ctx, entry); err != nil {
		r.log.Warn().Err(err).Str("job_id", entry.JobID).Msg("failed to record job history")
	}
}

var _ pipeline.Reporter = (*Recorder)(nil)
