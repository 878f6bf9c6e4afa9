// Package journal keeps a short audit trail of recovery outcomes per payment
// session so support can see which alerts a customer was shown.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

const (
	// DefaultPrefix is the Redis key prefix for session journals.
	DefaultPrefix = "recovery:journal:"
	// DefaultTTL bounds how long a session journal is kept after its last write.
	DefaultTTL = 72 * time.Hour
	// DefaultMaxEntries caps each session list.
	DefaultMaxEntries = 50
	// anonymousSession collects outcomes handled without a session ID.
	anonymousSession = "_anonymous"
)

// Config controls the Redis journal.
type Config struct {
	Prefix     string
	TTL        time.Duration
	MaxEntries int64
}

// Defaults fills zero values.
func (c *Config) Defaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
}

// RedisStore stores outcomes newest-first in one list per session.
type RedisStore struct {
	client redis.Cmdable
	cfg    Config
}

func NewRedisStore(client redis.Cmdable, cfg Config) *RedisStore {
	if client == nil {
		return nil
	}
	cfg.Defaults()
	return &RedisStore{client: client, cfg: cfg}
}

// Append records outcome under its session.
func (s *RedisStore) Append(ctx context.Context, outcome recovery.Outcome) error {
	if s == nil {
		return errors.New("journal store not configured")
	}
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal outcome: %w", err)
	}
	key := s.key(outcome.SessionID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, s.cfg.MaxEntries-1)
	pipe.Expire(ctx, key, s.cfg.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append journal %s: %w", key, err)
	}
	return nil
}

// Recent returns up to limit outcomes for sessionID, newest first.
func (s *RedisStore) Recent(ctx context.Context, sessionID string, limit int64) ([]recovery.Outcome, error) {
	if s == nil {
		return nil, errors.New("journal store not configured")
	}
	if limit <= 0 || limit > s.cfg.MaxEntries {
		limit = s.cfg.MaxEntries
	}
	vals, err := s.client.LRange(ctx, s.key(sessionID), 0, limit-1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]recovery.Outcome, 0, len(vals))
	for _, v := range vals {
		var o recovery.Outcome
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, fmt.Errorf("decode journal entry: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Clear drops the journal of sessionID.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if s == nil {
		return errors.New("journal store not configured")
	}
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// ObserveOutcome implements recovery.Observer. Write failures are logged.
func (s *RedisStore) ObserveOutcome(ctx context.Context, outcome recovery.Outcome) {
	if err := s.Append(context.WithoutCancel(ctx), outcome); err != nil {
		log.WithTrace(ctx).WithError(err).WithField(log.FieldHandleID, outcome.HandleID).Warn("journal append failed")
	}
}

func (s *RedisStore) key(sessionID string) string {
	if sessionID == "" {
		sessionID = anonymousSession
	}
	return s.cfg.Prefix + sessionID
}
