package cdn

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// CloudFrontAPI is the subset of the CloudFront client used here.
type CloudFrontAPI interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

// CloudFront implements Invalidator on Amazon CloudFront.
type CloudFront struct {
	api CloudFrontAPI
}

func NewCloudFront(api CloudFrontAPI) *CloudFront {
	return &CloudFront{api: api}
}

// CreateInvalidation submits all paths of batch in a single request.
func (c *CloudFront) CreateInvalidation(ctx context.Context, distributionID string, batch Batch) (Invalidation, error) {
	out, err := c.api.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionID),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(batch.CallerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(batch.Paths))),
				Items:    batch.Paths,
			},
		},
	})
	if err != nil {
		return Invalidation{}, fmt.Errorf("cloudfront invalidation for %s failed: %w", distributionID, err)
	}
	if out == nil || out.Invalidation == nil {
		return Invalidation{}, nil
	}

	return Invalidation{
		ID:     aws.ToString(out.Invalidation.Id),
		Status: aws.ToString(out.Invalidation.Status),
	}, nil
}

var _ Invalidator = (*CloudFront)(nil)
