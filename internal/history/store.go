// Package history keeps a short-lived record of reported job outcomes.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andresuchdata/deploy-pipeline-tasks/internal/config"
)

const (
	jobKeyPrefix = "pipeline-tasks:job:"
	defaultTTL   = 7 * 24 * time.Hour
)

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Entry is the recorded outcome of one job.
type Entry struct {
	JobID      string    `json:"job_id"`
	Task       string    `json:"task"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

// Store persists job outcomes.
type Store interface {
	Save(ctx context.Context, entry Entry) error
	Get(ctx context.Context, jobID string) (*Entry, bool, error)
}

type redisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

type noopStore struct{}

// NewStore returns a Redis-backed Store, or a no-op store when history is
// disabled.
func NewStore(cfg config.HistoryConfig) (Store, error) {
	if !cfg.Enabled {
		return &noopStore{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisStore(client, time.Duration(cfg.TTLSeconds)*time.Second), nil
}

// NewRedisStore wraps an existing client. A non-positive ttl uses the default.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func NewNoopStore() Store {
	return &noopStore{}
}

func (s *redisStore) Save(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode job history: %w", err)
	}

	if err := s.client.Set(ctx, jobKey(entry.JobID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, jobID string) (*Entry, bool, error) {
	payload, err := s.client.Get(ctx, jobKey(jobID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, false, fmt.Errorf("decode job history: %w", err)
	}
	return &entry, true, nil
}

func (noopStore) Save(context.Context, Entry) error { return nil }

func (noopStore) Get(context.Context, string) (*Entry, bool, error) { return nil, false, nil }

func jobKey(jobID string) string {
	return jobKeyPrefix + jobID
}

func buildRedisOptions(cfg config.HistoryConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
