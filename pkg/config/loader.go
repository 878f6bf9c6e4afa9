package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions 加载配置选项
type LoadOptions struct {
	ConfigPath    string // 配置文件目录，默认 "./configs"
	ConfigName    string // 配置文件名（不含扩展名），默认 "recovery_{APP_ENV}"
	EnvPrefix     string // 环境变量前缀，默认 "RECOVERY"
	AllowNoConfig bool   // 允许没有配置文件，纯环境变量配置
}

func (o *LoadOptions) applyDefaults() {
	if o.ConfigPath == "" {
		o.ConfigPath = "./configs"
	}
	if o.ConfigName == "" {
		o.ConfigName = fmt.Sprintf("recovery_%s", GetEnv())
	}
	if o.EnvPrefix == "" {
		o.EnvPrefix = "RECOVERY"
	}
}

// LoadConfig 通用配置加载函数
// cfg 必须是指向配置结构体的指针
func LoadConfig(cfg interface{}, opts ...LoadOptions) error {
	opt := LoadOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}

	// 加载 .env 文件
	if err := loadDotEnv(); err != nil {
		return err
	}
	opt.applyDefaults()

	v := viper.New()
	v.SetConfigName(opt.ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(opt.ConfigPath)

	// 环境变量覆盖，如 RECOVERY_REDIS_ADDR -> redis.addr
	v.SetEnvPrefix(opt.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v, envKeys)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) || !opt.AllowNoConfig {
			return fmt.Errorf("read config failed: %w", err)
		}
	}

	if err := v.Unmarshal(cfg, decodeHook()); err != nil {
		return fmt.Errorf("unmarshal config failed: %w", err)
	}
	return nil
}

// envKeys 允许仅通过环境变量设置的配置项
// viper 的 AutomaticEnv 只对已知 key 生效，Unmarshal 前需要显式绑定
var envKeys = []string{
	"app.env", "app.node_id",
	"log.format", "log.level", "log.report_caller",
	"redis.addr", "redis.username", "redis.password", "redis.db",
	"kafka.enabled", "kafka.brokers", "kafka.topic", "kafka.client_id",
	"kafka.username", "kafka.password", "kafka.sasl_mechanism", "kafka.tls_enabled",
	"tracing.exporter", "tracing.endpoint", "tracing.service_name", "tracing.insecure", "tracing.sample_ratio",
	"journal.enabled", "journal.prefix", "journal.ttl", "journal.max_entries",
	"localization.catalog_path",
}

func bindEnvKeys(v *viper.Viper, keys []string) {
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func loadDotEnv() error {
	envFile := os.Getenv("ENV_FILE")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s failed: %w", envFile, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env failed: %w", err)
	}
	return nil
}

// GetEnv 获取当前环境，默认为 "dev"
func GetEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		return "dev"
	}
	return env
}

// GetNodeID 获取节点 ID，按顺序尝试多个环境变量，最后回退到 HOSTNAME
func GetNodeID(envKeys ...string) string {
	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return os.Getenv("HOSTNAME")
}
