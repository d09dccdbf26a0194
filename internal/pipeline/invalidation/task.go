// Package invalidation submits a CDN cache invalidation for a set of paths.
package invalidation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/cdn"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

const (
	taskName     = "invalidate-cloudfront"
	opInvalidate = "invalidate paths"
)

// Parameters are the UserParameters keys of an invalidation job.
type Parameters struct {
	DistributionID    string `json:"distributionId" validate:"required"`
	InvalidationPaths string `json:"invalidationPaths" validate:"required"`
}

func (p Parameters) Subject() string {
	return fmt.Sprintf("on distribution %q", p.DistributionID)
}

// Paths splits InvalidationPaths on commas. Entries are not trimmed and a
// comma cannot be escaped.
func (p Parameters) Paths() []string {
	return strings.Split(p.InvalidationPaths, ",")
}

// Option configures a Task.
type Option func(*Task)

// WithClock overrides the clock used to derive caller references.
func WithClock(now func() time.Time) Option {
	return func(t *Task) {
		t.now = now
	}
}

// Task submits one invalidation batch per job.
type Task struct {
	invalidator cdn.Invalidator
	now         func() time.Time
}

func New(invalidator cdn.Invalidator, opts ...Option) *Task {
	t := &Task{
		invalidator: invalidator,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Task) Name() string { return taskName }

func (t *Task) Describe(userParameters string) string {
	return pipeline.DescribeParameters[Parameters](userParameters)
}

func (t *Task) Run(ctx context.Context, userParameters string) error {
	params, err := pipeline.DecodeParameters[Parameters](opInvalidate, userParameters)
	if err != nil {
		return err
	}
	return t.Invalidate(ctx, params)
}

// Invalidate submits every path in a single batch. Acceptance is all that
// is waited for; the purge itself completes asynchronously.
func (t *Task) Invalidate(ctx context.Context, params Parameters) error {
	paths := params.Paths()
	log := zerolog.Ctx(ctx).With().
		Str("distribution_id", params.DistributionID).
		Logger()
	log.Info().Strs("paths", paths).Msg("submitting invalidation")

	inv, err := t.invalidator.CreateInvalidation(ctx, params.DistributionID, cdn.Batch{
		Paths:           paths,
		CallerReference: cdn.CallerReference(t.now()),
	})
	if err != nil {
		return pipeline.OperationError(opInvalidate, params.Subject(), err)
	}

	log.Info().
		Str("invalidation_id", inv.ID).
		Str("status", inv.Status).
		Msg("invalidation accepted")
	return nil
}

var (
	_ pipeline.Task      = (*Task)(nil)
	_ pipeline.Describer = (*Task)(nil)
	_ pipeline.Subjecter = Parameters{}
)
