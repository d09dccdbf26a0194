// Package cdn submits cache invalidations to a content delivery network.
package cdn

import (
	"context"
	"strconv"
	"time"
)

// Batch is one invalidation request. CallerReference distinguishes otherwise
// identical submissions.
type Batch struct {
	Paths           []string
	CallerReference string
}

// Invalidation is the provider acknowledgement of an accepted batch.
type Invalidation struct {
	ID     string
	Status string
}

// Invalidator submits invalidation batches for a distribution.
type Invalidator interface {
	CreateInvalidation(ctx context.Context, distributionID string, batch Batch) (Invalidation, error)
}

// CallerReference renders now as Unix nanoseconds, digits only.
func CallerReference(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}
