package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/bootstrap"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/history"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
)

// jobFromFlags builds a job from an event file when one is given, or from
// the explicit id and parameters otherwise.
func jobFromFlags(eventPath, jobID, userParameters string) (pipeline.Job, error) {
	if eventPath != "" {
		raw, err := os.ReadFile(eventPath)
		if err != nil {
			return pipeline.Job{}, fmt.Errorf("failed to read event %s: %w", eventPath, err)
		}
		var event events.CodePipelineJobEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return pipeline.Job{}, fmt.Errorf("failed to decode event %s: %w", eventPath, err)
		}
		job := bootstrap.JobFromEvent(event)
		if job.ID == "" {
			return pipeline.Job{}, fmt.Errorf("event %s has no job id", eventPath)
		}
		return job, nil
	}

	if jobID == "" {
		return pipeline.Job{}, fmt.Errorf("either --event or --job-id is required")
	}
	return pipeline.Job{ID: jobID, UserParameters: userParameters}, nil
}

func printEntry(w io.Writer, entry *history.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entry)
}
