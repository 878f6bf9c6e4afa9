package config

import "github.com/Goden-Gun/payment-recovery/pkg/kafka"

// ==================== 基础配置 ====================

// AppConfig 应用基础配置
type AppConfig struct {
	Env    string `yaml:"env" mapstructure:"env"`
	NodeID string `yaml:"node_id" mapstructure:"node_id"`
}

// LogConfig 日志配置
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}

// ==================== 恢复引擎配置 ====================

// JournalConfig 恢复结果审计日志 (Redis) 配置
type JournalConfig struct {
	Enabled    bool     `yaml:"enabled" mapstructure:"enabled"`
	Prefix     string   `yaml:"prefix" mapstructure:"prefix"`
	TTL        Duration `yaml:"ttl" mapstructure:"ttl"`
	MaxEntries int64    `yaml:"max_entries" mapstructure:"max_entries"`
}

// LocalizationConfig 提示文案配置
type LocalizationConfig struct {
	CatalogPath string `yaml:"catalog_path" mapstructure:"catalog_path"`
}

// ServiceConfig 汇总恢复引擎宿主所需的全部配置
type ServiceConfig struct {
	App          AppConfig          `yaml:"app" mapstructure:"app"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
	Redis        RedisConfig        `yaml:"redis" mapstructure:"redis"`
	Kafka        kafka.Config       `yaml:"kafka" mapstructure:"kafka"`
	Tracing      TracingConfig      `yaml:"tracing" mapstructure:"tracing"`
	Journal      JournalConfig      `yaml:"journal" mapstructure:"journal"`
	Localization LocalizationConfig `yaml:"localization" mapstructure:"localization"`
}
