package analytics

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

const pushTimeout = 2 * time.Second

// RedisSink appends events to a Redis list for an external pipeline to
// consume. Failures are logged and never surface to the caller.
type RedisSink struct {
	client *redis.Client
	key    string
	logger *logging.Logger
}

// RedisOptions configures the Redis connection for the sink.
type RedisOptions struct {
	Addr     string
	Password string
	UseTLS   bool
	Key      string
}

// NewRedisSink connects to Redis and returns a sink writing to the
// configured list key.
func NewRedisSink(opts RedisOptions, logger *logging.Logger) *RedisSink {
	if logger == nil {
		logger = logging.Default()
	}
	ropts := &redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
	}
	if opts.UseTLS {
		ropts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	key := opts.Key
	if key == "" {
		key = "analytics:events"
	}
	return &RedisSink{
		client: redis.NewClient(ropts),
		key:    key,
		logger: logger,
	}
}

// NewRedisSinkWithClient wraps an existing client. Tests use this.
func NewRedisSinkWithClient(client *redis.Client, key string, logger *logging.Logger) *RedisSink {
	if logger == nil {
		logger = logging.Default()
	}
	if key == "" {
		key = "analytics:events"
	}
	return &RedisSink{client: client, key: key, logger: logger}
}

// Push serializes the event and appends it to the list.
func (s *RedisSink) Push(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal analytics event", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()
	if err := s.client.LPush(ctx, s.key, payload).Err(); err != nil {
		s.logger.Error("failed to push analytics event", "error", err, "key", s.key)
	}
}

// Ping verifies connectivity, used at startup.
func (s *RedisSink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
