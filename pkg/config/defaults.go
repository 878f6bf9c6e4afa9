package config

// ==================== LogConfig 默认值 ====================

// ApplyDefaults 应用日志配置默认值
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "disabled"
	}
	if t.ServiceName == "" {
		t.ServiceName = "payment-recovery"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}

// ==================== JournalConfig 默认值 ====================

// ApplyDefaults 应用审计日志配置默认值
func (j *JournalConfig) ApplyDefaults() {
	if j.Prefix == "" {
		j.Prefix = "recovery:journal:"
	}
	if j.TTL <= 0 {
		j.TTL = 72 * 3600
	}
	if j.MaxEntries <= 0 {
		j.MaxEntries = 50
	}
}

// ApplyDefaults 应用全部默认值
func (c *ServiceConfig) ApplyDefaults() {
	if c.App.Env == "" {
		c.App.Env = GetEnv()
	}
	c.Log.ApplyDefaults()
	c.Tracing.ApplyDefaults()
	c.Journal.ApplyDefaults()
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "payment.recovery.outcomes"
	}
}
