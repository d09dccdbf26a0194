// Package bucketcopy copies the objects of one bucket into another.
package bucketcopy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/storage"
)

const (
	taskName = "bucket-copy"
	opCopy   = "copy objects"
)

// Parameters are the UserParameters keys of a bucket copy job.
type Parameters struct {
	SourceBucket      string `json:"sourceBucket" validate:"required"`
	DestinationBucket string `json:"destinationBucket" validate:"required"`
}

func (p Parameters) Subject() string {
	return fmt.Sprintf("from bucket %q to bucket %q", p.SourceBucket, p.DestinationBucket)
}

// Task copies every object of the first listing page of SourceBucket to
// DestinationBucket under the same key.
type Task struct {
	storage storage.ObjectStorage
}

func New(store storage.ObjectStorage) *Task {
	return &Task{storage: store}
}

func (t *Task) Name() string { return taskName }

func (t *Task) Describe(userParameters string) string {
	return pipeline.DescribeParameters[Parameters](userParameters)
}

func (t *Task) Run(ctx context.Context, userParameters string) error {
	params, err := pipeline.DecodeParameters[Parameters](opCopy, userParameters)
	if err != nil {
		return err
	}
	return t.Copy(ctx, params)
}

// Copy lists the source bucket once and copies each listed key. An empty
// listing is an error, as is the first failed copy.
func (t *Task) Copy(ctx context.Context, params Parameters) error {
	log := zerolog.Ctx(ctx).With().
		Str("source_bucket", params.SourceBucket).
		Str("destination_bucket", params.DestinationBucket).
		Logger()
	subject := params.Subject()

	objects, err := t.storage.ListObjects(ctx, params.SourceBucket)
	if err != nil {
		return pipeline.OperationError(opCopy, subject, err)
	}
	if len(objects) == 0 {
		return pipeline.EmptySourceError(opCopy, subject)
	}

	log.Info().Int("objects", len(objects)).Msg("copying objects")
	for _, object := range objects {
		log.Debug().Str("key", object.Key).Int64("size", object.Size).Msg("copy object")
		if err := t.storage.CopyObject(ctx, params.SourceBucket, object.Key, params.DestinationBucket, object.Key); err != nil {
			return pipeline.OperationError(opCopy, subject, err)
		}
	}
	log.Info().Int("objects", len(objects)).Msg("objects copied")

	return nil
}

var (
	_ pipeline.Task      = (*Task)(nil)
	_ pipeline.Describer = (*Task)(nil)
	_ pipeline.Subjecter = Parameters{}
)
