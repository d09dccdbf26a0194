package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/config"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/mocks"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

type memoryStore struct {
	entries []Entry
	err     error
}

func (m *memoryStore) Save(_ context.Context, entry Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryStore) Get(_ context.Context, jobID string) (*Entry, bool, error) {
	for i := range m.entries {
		if m.entries[i].JobID == jobID {
			return &m.entries[i], true, nil
		}
	}
	return nil, false, nil
}

func fixedNow() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

func TestRecorderRecordsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockReporter(ctrl)
	next.EXPECT().ReportSuccess(gomock.Any(), "job-1").Return(nil).Times(1)

	store := &memoryStore{}
	rec := NewRecorder(next, store, "bucket-copy", zerolog.Nop())
	rec.now = fixedNow

	require.NoError(t, rec.ReportSuccess(context.Background(), "job-1"))

	assert.Equal(t, []Entry{{
		JobID:      "job-1",
		Task:       "bucket-copy",
		Status:     StatusSucceeded,
		ReportedAt: fixedNow(),
	}}, store.entries)
}

func TestRecorderRecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockReporter(ctrl)
	failure := pipeline.Failure{Message: "boom", Type: pipeline.FailureTypeJobFailed}
	next.EXPECT().ReportFailure(gomock.Any(), "job-1", failure).Return(nil).Times(1)

	store := &memoryStore{}
	rec := NewRecorder(next, store, "invalidate-cloudfront", zerolog.Nop())

	require.NoError(t, rec.ReportFailure(context.Background(), "job-1", failure))

	entry, ok, err := store.Get(context.Background(), "job-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, StatusFailed, entry.Status)
	assert.Equal(t, "boom", entry.Message)
}

func TestRecorderSkipsStoreWhenReportFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockReporter(ctrl)
	next.EXPECT().ReportSuccess(gomock.Any(), "job-1").Return(errors.New("throttled"))

	store := &memoryStore{}
	err := NewRecorder(next, store, "bucket-copy", zerolog.Nop()).ReportSuccess(context.Background(), "job-1")

	assert.EqualError(t, err, "throttled")
	assert.Empty(t, store.entries)
}

func TestRecorderIgnoresStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockReporter(ctrl)
	next.EXPECT().ReportSuccess(gomock.Any(), "job-1").Return(nil)

	store := &memoryStore{err: errors.New("redis down")}
	err := NewRecorder(next, store, "bucket-copy", zerolog.Nop()).ReportSuccess(context.Background(), "job-1")

	assert.NoError(t, err)
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.HistoryConfig{RedisURL: "redis://:secret@cache:6380/3"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)

	opts, err = buildRedisOptions(config.HistoryConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)

	_, err = buildRedisOptions(config.HistoryConfig{RedisURL: "http://nope"})
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestNewStoreDisabled(t *testing.T) {
	store, err := NewStore(config.HistoryConfig{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), Entry{JobID: "job-1"}))
	_, ok, err := store.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreUnavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewRedisStore(client, 0)

	assert.ErrorContains(t, store.Save(context.Background(), Entry{JobID: "job-1"}), "redis set failed")
	_, _, err := store.Get(context.Background(), "job-1")
	assert.ErrorContains(t, err, "redis get failed")
}
