package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/payment-recovery/pkg/config"
	"github.com/Goden-Gun/payment-recovery/pkg/journal"
	"github.com/Goden-Gun/payment-recovery/pkg/kafka"
	"github.com/Goden-Gun/payment-recovery/pkg/localization"
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

// Engine is a recovery manager together with the infrastructure its
// observers write to.
type Engine struct {
	Manager   *recovery.Manager
	Catalog   *localization.Catalog
	Journal   *journal.RedisStore
	Publisher *kafka.EventPublisher

	redisClient *redis.Client
	producer    *kafka.Producer
}

// NewEngine builds a recovery.Manager from cfg. The journal and the outcome
// publisher are attached only when enabled in cfg. Extra options are applied
// after the ones derived from cfg.
func NewEngine(ctx context.Context, cfg *config.ServiceConfig, executor recovery.Executor, opts ...recovery.Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("service config is required")
	}

	catalog := localization.DefaultCatalog()
	if path := cfg.Localization.CatalogPath; path != "" {
		loaded, err := localization.LoadCatalog(path)
		if err != nil {
			return nil, fmt.Errorf("load localization catalog: %w", err)
		}
		catalog = loaded
	}

	e := &Engine{Catalog: catalog}
	var managerOpts []recovery.Option

	if cfg.Journal.Enabled {
		client, err := InitRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init journal redis: %w", err)
		}
		e.redisClient = client
		e.Journal = journal.NewRedisStore(client, journal.Config{
			Prefix:     cfg.Journal.Prefix,
			TTL:        cfg.Journal.TTL.Duration(),
			MaxEntries: cfg.Journal.MaxEntries,
		})
		managerOpts = append(managerOpts, recovery.WithObserver(e.Journal))
	}

	if cfg.Kafka.Enabled {
		p, err := InitKafka(cfg.Kafka)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("init outcome publisher: %w", err)
		}
		e.producer = p
		e.Publisher = kafka.NewEventPublisher(p, cfg.Kafka.Topic)
		managerOpts = append(managerOpts, recovery.WithObserver(e.Publisher))
	}

	manager, err := recovery.New(executor, catalog, append(managerOpts, opts...)...)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	e.Manager = manager

	log.WithFields(log.Fields{
		"language": catalog.Language(),
		"journal":  e.Journal != nil,
		"kafka":    e.Publisher != nil,
	}).Info("recovery engine initialized")
	return e, nil
}

// Close releases the Redis client and the Kafka producer.
func (e *Engine) Close() error {
	var errs []error
	if e.producer != nil {
		if err := e.producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close kafka: %w", err))
		}
		e.producer = nil
	}
	if e.redisClient != nil {
		if err := e.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		e.redisClient = nil
	}
	return errors.Join(errs...)
}
