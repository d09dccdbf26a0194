// cmd/pipelinetask/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/bootstrap"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/config"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
	"github.com/andresuchdata/deploy-pipeline-tasks/pkg/logger"
)

type appKey struct{}

func jobFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "event",
			Usage: "Path to a CodePipeline job event JSON file",
		},
		&cli.StringFlag{
			Name:  "job-id",
			Usage: "Job id to report the outcome for (ignored with --event)",
		},
		&cli.StringFlag{
			Name:  "user-parameters",
			Usage: "UserParameters JSON string (ignored with --event)",
		},
		&cli.StringFlag{
			Name:    "reporter",
			Usage:   "Where to report the outcome: codepipeline or log",
			Value:   bootstrap.ReporterLog,
			EnvVars: []string{"PIPELINE_TASK_REPORTER"},
		},
	}
}

func initApp(c *cli.Context) error {
	cfg := config.Load()

	logger.SetFormat(c.String("log-format"))
	logger.SetLevel(cfg.Log.Level)

	app, err := bootstrap.New(c.Context, cfg, logger.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	c.Context = context.WithValue(c.Context, appKey{}, app)
	return nil
}

func appFrom(c *cli.Context) *bootstrap.App {
	app, _ := c.Context.Value(appKey{}).(*bootstrap.App)
	return app
}

func main() {
	app := &cli.App{
		Name:  "pipelinetask",
		Usage: "Run deploy pipeline tasks outside of Lambda",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log output format: console or json",
				Value:   "console",
				EnvVars: []string{"LOG_FORMAT"},
			},
		},
		Before: initApp,
		Commands: []*cli.Command{
			{
				Name:  "copy",
				Usage: "Copy the objects of one bucket into another",
				Flags: jobFlags(),
				Action: func(c *cli.Context) error {
					task, err := appFrom(c).BucketCopy()
					if err != nil {
						return err
					}
					return runTask(c, task)
				},
			},
			{
				Name:  "invalidate",
				Usage: "Submit a CloudFront invalidation",
				Flags: jobFlags(),
				Action: func(c *cli.Context) error {
					return runTask(c, appFrom(c).Invalidation())
				},
			},
			{
				Name:  "history",
				Usage: "Show the recorded outcome of a job",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "job-id",
						Usage:    "Job id to look up",
						Required: true,
					},
				},
				Action: showHistory,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("pipelinetask failed")
	}
}

func runTask(c *cli.Context, task pipeline.Task) error {
	job, err := jobFromFlags(c.String("event"), c.String("job-id"), c.String("user-parameters"))
	if err != nil {
		return err
	}

	app := appFrom(c)
	reporter, err := app.Reporter(c.String("reporter"), task.Name())
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, app.Runner(reporter).Handle(c.Context, job, task))
	return nil
}

func showHistory(c *cli.Context) error {
	store, err := appFrom(c).HistoryStore()
	if err != nil {
		return err
	}

	entry, ok, err := store.Get(c.Context, c.String("job-id"))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no history for job %s (is HISTORY_ENABLED set?)", c.String("job-id"))
	}

	return printEntry(c.App.Writer, entry)
}
