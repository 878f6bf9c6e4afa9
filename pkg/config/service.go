package config

import (
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
)

// LoadServiceConfig 加载恢复引擎宿主配置：YAML + 环境变量 + Docker Secrets，并应用默认值
// 开启 Kafka SASL 认证时 KAFKA_PASSWORD 为必需项
func LoadServiceConfig(opts ...LoadOptions) (*ServiceConfig, error) {
	opt := LoadOptions{AllowNoConfig: true}
	if len(opts) > 0 {
		opt = opts[0]
	}

	cfg := &ServiceConfig{}
	secrets := []SecretDefinition{
		{Name: "REDIS_PASSWORD", Target: &cfg.Redis.Password},
		{Name: "KAFKA_PASSWORD", Target: &cfg.Kafka.Password, Required: func() bool {
			return cfg.Kafka.Enabled && cfg.Kafka.Username != ""
		}},
	}
	sources, err := LoadConfigWithSecrets(cfg, secrets, opt)
	if err != nil {
		return nil, err
	}
	for name, source := range sources {
		log.WithField("secret", name).WithField("source", source).Debug("secret resolved")
	}

	if cfg.App.NodeID == "" {
		cfg.App.NodeID = GetNodeID("NODE_ID", "POD_NAME")
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
