package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/payment-recovery/pkg/config"
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
)

// redisPingTimeout bounds the start-up connectivity check.
const redisPingTimeout = 3 * time.Second

// InitRedis 创建审计日志使用的 Redis 客户端，启动时 ping 一次，失败则关闭客户端
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.Db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.WithError(err).WithField("addr", cfg.Addr).Error("redis初始化失败")
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	log.WithFields(log.Fields{"addr": cfg.Addr, "db": cfg.Db}).Info("redis initialized successfully")
	return client, nil
}
