// Package bootstrap wires configuration into the clients and tasks used by
// the command entrypoints.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/cdn"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/config"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/history"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/orchestrator"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline/bucketcopy"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/pipeline/invalidation"
	"github.com/andresuchdata/deploy-pipeline-tasks/internal/storage"
)

const (
	ReporterCodePipeline = "codepipeline"
	ReporterLog          = "log"
)

// App holds the configuration shared by every client built for a process.
type App struct {
	cfg          *config.Config
	aws          aws.Config
	log          zerolog.Logger
	historyStore history.Store
}

// New loads the AWS SDK configuration for cfg.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithAWS(cfg, awsCfg, log), nil
}

// NewWithAWS builds an App from an already resolved AWS configuration.
func NewWithAWS(cfg *config.Config, awsCfg aws.Config, log zerolog.Logger) *App {
	return &App{
		cfg: cfg,
		aws: awsCfg,
		log: log,
	}
}

// ObjectStorage builds the storage backend selected by STORAGE_BACKEND.
func (a *App) ObjectStorage() (storage.ObjectStorage, error) {
	sc := a.cfg.Storage
	switch sc.Backend {
	case config.StorageBackendS3, "":
		client := s3.NewFromConfig(a.aws, func(o *s3.Options) {
			if sc.Endpoint != "" {
				o.BaseEndpoint = aws.String(sc.Endpoint)
			}
			if sc.AccessKey != "" && sc.SecretKey != "" {
				o.Credentials = credentials.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, "")
			}
			o.UsePathStyle = sc.ForcePathStyle
		})
		return storage.NewS3Client(client, sc.ListPageSize), nil
	case config.StorageBackendMinio:
		return storage.NewMinioClient(storage.MinioConfig{
			Endpoint:     sc.Endpoint,
			AccessKey:    sc.AccessKey,
			SecretKey:    sc.SecretKey,
			Region:       a.cfg.AWS.Region,
			UseSSL:       sc.UseSSL,
			ListPageSize: sc.ListPageSize,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

// Invalidator builds the CloudFront client.
func (a *App) Invalidator() cdn.Invalidator {
	client := cloudfront.NewFromConfig(a.aws, func(o *cloudfront.Options) {
		if a.cfg.CloudFront.Endpoint != "" {
			o.BaseEndpoint = aws.String(a.cfg.CloudFront.Endpoint)
		}
	})
	return cdn.NewCloudFront(client)
}

// Reporter builds the outcome reporter of the given kind for task. Outcomes
// are also recorded to the history store when it is enabled and reachable;
// an unreachable store never prevents reporting.
func (a *App) Reporter(kind, task string) (pipeline.Reporter, error) {
	var reporter pipeline.Reporter
	switch kind {
	case ReporterCodePipeline, "":
		client := codepipeline.NewFromConfig(a.aws, func(o *codepipeline.Options) {
			if a.cfg.CodePipeline.Endpoint != "" {
				o.BaseEndpoint = aws.String(a.cfg.CodePipeline.Endpoint)
			}
		})
		reporter = orchestrator.NewCodePipelineReporter(client)
	case ReporterLog:
		reporter = orchestrator.NewLogReporter(a.log)
	default:
		return nil, fmt.Errorf("unknown reporter %q", kind)
	}

	if !a.cfg.History.Enabled {
		return reporter, nil
	}
	store, err := a.HistoryStore()
	if err != nil {
		a.log.Warn().Err(err).Msg("job history unavailable, outcomes will not be recorded")
		store = history.NewNoopStore()
	}
	return history.NewRecorder(reporter, store, task, a.log), nil
}

// HistoryStore returns the outcome history store, connecting on first use.
func (a *App) HistoryStore() (history.Store, error) {
	if a.historyStore != nil {
		return a.historyStore, nil
	}
	store, err := history.NewStore(a.cfg.History)
	if err != nil {
		return nil, fmt.Errorf("init job history: %w", err)
	}
	a.historyStore = store
	return store, nil
}

// BucketCopy builds the bucket copy task with its configured storage.
func (a *App) BucketCopy() (*bucketcopy.Task, error) {
	store, err := a.ObjectStorage()
	if err != nil {
		return nil, err
	}
	return bucketcopy.New(store), nil
}

// Invalidation builds the CloudFront invalidation task.
func (a *App) Invalidation() *invalidation.Task {
	return invalidation.New(a.Invalidator())
}

// Runner builds a Runner logging through the App logger.
func (a *App) Runner(reporter pipeline.Reporter) *pipeline.Runner {
	return pipeline.NewRunner(reporter, a.log)
}
