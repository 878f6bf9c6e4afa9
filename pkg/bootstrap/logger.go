package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/payment-recovery/pkg/config"
)

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// LoggerOptions 日志初始化选项
type LoggerOptions struct {
	// Logger 目标 logger，nil 则配置 logrus 标准 logger
	Logger *log.Logger
	// ServiceName 服务名称，用于日志文件命名和 service 字段
	ServiceName string
	// NodeID 节点标识，空则自动探测主机名
	NodeID string
	// FileConfig 日志文件配置，nil 则不输出到文件
	FileConfig *LogFileConfig
	// Stdout 控制台输出，nil 则使用 os.Stdout
	Stdout io.Writer
}

// nodeHook 为每条日志添加服务名与节点ID
type nodeHook struct {
	service string
	nodeID  string
}

func (h *nodeHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *nodeHook) Fire(entry *log.Entry) error {
	if h.service != "" {
		entry.Data["service"] = h.service
	}
	entry.Data["node_id"] = h.nodeID
	return nil
}

// detectNodeID 检测节点ID（容器内即容器ID）
func detectNodeID() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if hostname := strings.TrimSpace(string(data)); hostname != "" {
			return hostname
		}
	}
	return "unknown"
}

// InitLogger 初始化标准 logger，仅设置格式和级别
func InitLogger(cfg config.LogConfig) error {
	return InitLoggerWithOptions(cfg, LoggerOptions{})
}

// InitLoggerWithFile 初始化标准 logger 并按天轮转输出到 ./logs
func InitLoggerWithFile(cfg config.LogConfig, serviceName string) error {
	return InitLoggerWithOptions(cfg, LoggerOptions{
		ServiceName: serviceName,
		FileConfig: &LogFileConfig{
			Enabled:      true,
			Dir:          "./logs",
			Filename:     serviceName,
			MaxAgeDays:   7,
			RotationDays: 1,
		},
	})
}

// InitLoggerWithOptions 使用完整选项初始化日志
func InitLoggerWithOptions(cfg config.LogConfig, opts LoggerOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&log.TextFormatter{})
	default:
		logger.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.InfoLevel)
		logger.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}
	logger.SetReportCaller(cfg.ReportCaller)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger.SetOutput(stdout)

	if opts.FileConfig != nil && opts.FileConfig.Enabled {
		writer, err := newRotatingWriter(opts.FileConfig, opts.ServiceName)
		if err != nil {
			logger.Errorf("设置日志输出失败: %v", err)
			return err
		}
		logger.SetOutput(io.MultiWriter(stdout, writer))
	}

	nodeID := opts.NodeID
	if nodeID == "" {
		nodeID = detectNodeID()
	}
	logger.AddHook(&nodeHook{service: opts.ServiceName, nodeID: nodeID})
	return nil
}

// newRotatingWriter 创建按天轮转的日志文件 writer
func newRotatingWriter(fileCfg *LogFileConfig, serviceName string) (io.Writer, error) {
	logDir := fileCfg.Dir
	if logDir == "" {
		logDir = "./logs"
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	filename := fileCfg.Filename
	if filename == "" {
		filename = serviceName
	}
	if filename == "" {
		filename = "payment-recovery"
	}

	maxAge := fileCfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	rotationDays := fileCfg.RotationDays
	if rotationDays <= 0 {
		rotationDays = 1
	}

	return rotatelogs.New(
		filepath.Join(logDir, filename+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, filename+".log")),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationDays)*24*time.Hour),
	)
}
