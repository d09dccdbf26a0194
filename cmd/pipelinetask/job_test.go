package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/history"
)

func TestJobFromFlagsExplicit(t *testing.T) {
	job, err := jobFromFlags("", "job-1", `{"distributionId":"D1","invalidationPaths":"/*"}`)
	require.NoError(t, err)
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, `{"distributionId":"D1","invalidationPaths":"/*"}`, job.UserParameters)

	_, err = jobFromFlags("", "", "{}")
	assert.ErrorContains(t, err, "--job-id")
}

func TestJobFromFlagsEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"CodePipeline.job": {
			"id": "job-7",
			"data": {"actionConfiguration": {"configuration": {"UserParameters": "{\"sourceBucket\":\"a\",\"destinationBucket\":\"b\"}"}}}
		}
	}`), 0o644))

	job, err := jobFromFlags(path, "ignored", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "job-7", job.ID)
	assert.Equal(t, `{"sourceBucket":"a","destinationBucket":"b"}`, job.UserParameters)
}

func TestJobFromFlagsEventErrors(t *testing.T) {
	_, err := jobFromFlags(filepath.Join(t.TempDir(), "missing.json"), "", "")
	assert.ErrorContains(t, err, "failed to read event")

	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"CodePipeline.job": {}}`), 0o644))
	_, err = jobFromFlags(path, "", "")
	assert.ErrorContains(t, err, "no job id")
}

func TestPrintEntry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEntry(&buf, &history.Entry{
		JobID:      "job-1",
		Task:       "bucket-copy",
		Status:     history.StatusSucceeded,
		ReportedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}))

	assert.Contains(t, buf.String(), `"job_id": "job-1"`)
	assert.Contains(t, buf.String(), `"status": "succeeded"`)
	assert.NotContains(t, buf.String(), `"message"`)
}
