package config

import (
	"fmt"
	"os"
	"strings"
)

// SecretSource 标记 Secret 值的来源
type SecretSource string

const (
	SecretFromFile    SecretSource = "file"
	SecretFromEnv     SecretSource = "env"
	SecretFromConfig  SecretSource = "config"
	SecretFromDefault SecretSource = "default"
)

// LookupSecret 按 {NAME}_FILE 文件 > {NAME} 环境变量 的顺序读取 Secret
// {NAME}_FILE 已设置但文件不可读时返回错误，不回退到环境变量
func LookupSecret(name string) (string, SecretSource, error) {
	if path := os.Getenv(name + "_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("read secret %s from %s: %w", name, path, err)
		}
		return strings.TrimSpace(string(data)), SecretFromFile, nil
	}
	if v := os.Getenv(name); v != "" {
		return v, SecretFromEnv, nil
	}
	return "", "", nil
}

// GetSecretOrEnv 是 LookupSecret 的简化版本，读取失败或未设置时返回默认值
func GetSecretOrEnv(name string, defaultValue string) string {
	v, _, err := LookupSecret(name)
	if err != nil || v == "" {
		return defaultValue
	}
	return v
}

// SecretDefinition 描述一个注入到配置字段的 Secret
type SecretDefinition struct {
	Name    string  // 如 KAFKA_PASSWORD
	Target  *string // 目标字段，配置文件中的值作为回退
	Default string
	// Required 在配置加载完成后求值，nil 表示可选
	Required func() bool
}

// LoadConfigWithSecrets 加载配置后注入 Secrets，返回每个 Secret 的最终来源
//
// 示例:
//
//	cfg := &ServiceConfig{}
//	secrets := []SecretDefinition{
//	    {Name: "KAFKA_PASSWORD", Target: &cfg.Kafka.Password, Required: func() bool {
//	        return cfg.Kafka.Enabled && cfg.Kafka.Username != ""
//	    }},
//	}
//	sources, err := LoadConfigWithSecrets(cfg, secrets)
func LoadConfigWithSecrets(cfg interface{}, secrets []SecretDefinition, opts ...LoadOptions) (map[string]SecretSource, error) {
	if err := LoadConfig(cfg, opts...); err != nil {
		return nil, err
	}

	sources := make(map[string]SecretSource, len(secrets))
	for _, s := range secrets {
		value, source, err := LookupSecret(s.Name)
		if err != nil {
			return nil, err
		}
		if value == "" && s.Target != nil && *s.Target != "" {
			value, source = *s.Target, SecretFromConfig
		}
		if value == "" && s.Default != "" {
			value, source = s.Default, SecretFromDefault
		}
		if value == "" && s.Required != nil && s.Required() {
			return nil, &SecretNotFoundError{Name: s.Name}
		}
		if s.Target != nil {
			*s.Target = value
		}
		if source != "" {
			sources[s.Name] = source
		}
	}
	return sources, nil
}

// SecretNotFoundError 必需的 Secret 未设置
type SecretNotFoundError struct {
	Name string
}

func (e *SecretNotFoundError) Error() string {
	return "required secret not found: " + e.Name
}
