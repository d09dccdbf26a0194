package cdn

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudFront struct {
	inputs []*cloudfront.CreateInvalidationInput
	out    *cloudfront.CreateInvalidationOutput
	err    error
}

func (f *fakeCloudFront) CreateInvalidation(_ context.Context, in *cloudfront.CreateInvalidationInput, _ ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	f.inputs = append(f.inputs, in)
	return f.out, f.err
}

func TestCloudFrontCreateInvalidation(t *testing.T) {
	api := &fakeCloudFront{
		out: &cloudfront.CreateInvalidationOutput{
			Invalidation: &types.Invalidation{
				Id:     aws.String("I2J0I21PCUYOIK"),
				Status: aws.String("InProgress"),
			},
		},
	}

	inv, err := NewCloudFront(api).CreateInvalidation(context.Background(), "D1", Batch{
		Paths:           []string{"/foo", "/bar", "/baz"},
		CallerReference: "1700000000123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, Invalidation{ID: "I2J0I21PCUYOIK", Status: "InProgress"}, inv)

	require.Len(t, api.inputs, 1)
	in := api.inputs[0]
	assert.Equal(t, "D1", aws.ToString(in.DistributionId))
	assert.Equal(t, "1700000000123456789", aws.ToString(in.InvalidationBatch.CallerReference))
	assert.Equal(t, int32(3), aws.ToInt32(in.InvalidationBatch.Paths.Quantity))
	assert.Equal(t, []string{"/foo", "/bar", "/baz"}, in.InvalidationBatch.Paths.Items)
}

func TestCloudFrontCreateInvalidationError(t *testing.T) {
	api := &fakeCloudFront{err: errors.New("NoSuchDistribution")}

	_, err := NewCloudFront(api).CreateInvalidation(context.Background(), "D1", Batch{Paths: []string{"/*"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "D1")
	assert.Contains(t, err.Error(), "NoSuchDistribution")
}

func TestCallerReference(t *testing.T) {
	base := time.Unix(1700000000, 123456789)

	ref := CallerReference(base)
	assert.Equal(t, "1700000000123456789", ref)
	assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), ref)
	assert.NotEqual(t, ref, CallerReference(base.Add(time.Nanosecond)))
}
