package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
	"github.com/Goden-Gun/payment-recovery/pkg/config"
	"github.com/Goden-Gun/payment-recovery/pkg/recovery"
)

type dismissingExecutor struct {
	alerts []recovery.Alert
}

func (e *dismissingExecutor) PresentAlert(_ context.Context, a recovery.Alert) recovery.Choice {
	e.alerts = append(e.alerts, a)
	return recovery.Dismissed
}

func (e *dismissingExecutor) ClosePayment(context.Context, classifier.RawFailure) {}

func TestNewEngine_Minimal(t *testing.T) {
	cfg := &config.ServiceConfig{}
	cfg.ApplyDefaults()

	exec := &dismissingExecutor{}
	engine, err := NewEngine(context.Background(), cfg, exec)
	require.NoError(t, err)
	defer engine.Close()

	assert.Nil(t, engine.Journal)
	assert.Nil(t, engine.Publisher)
	require.NotNil(t, engine.Manager)

	dismissed := 0
	engine.Manager.Handle(context.Background(), classifier.KnownFailure{Kind: classifier.KindSerialization}, nil, func() { dismissed++ })
	assert.Equal(t, 1, dismissed)
	require.Len(t, exec.alerts, 1)
	assert.Equal(t, codes.Serialization, exec.alerts[0].Code)
	assert.Equal(t, engine.Catalog.Title(codes.Serialization), exec.alerts[0].Title)
}

func TestNewEngine_WithJournal(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.ServiceConfig{
		Redis:   config.RedisConfig{Addr: mr.Addr()},
		Journal: config.JournalConfig{Enabled: true, Prefix: "test:journal:"},
	}
	cfg.ApplyDefaults()

	engine, err := NewEngine(context.Background(), cfg, &dismissingExecutor{})
	require.NoError(t, err)
	defer engine.Close()
	require.NotNil(t, engine.Journal)

	ctx := recovery.ContextWithSession(context.Background(), "sess-1")
	engine.Manager.Handle(ctx, classifier.KnownFailure{Kind: classifier.KindSerialization}, nil, nil)

	outcomes, err := engine.Journal.Recent(ctx, "sess-1", 10)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, recovery.ResultDismissed, outcomes[0].Result)
	assert.True(t, mr.Exists("test:journal:sess-1"))
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := NewEngine(context.Background(), nil, &dismissingExecutor{})
	require.Error(t, err)

	cfg := &config.ServiceConfig{}
	_, err = NewEngine(context.Background(), cfg, nil)
	require.Error(t, err)

	cfg.Localization.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewEngine(context.Background(), cfg, &dismissingExecutor{})
	require.ErrorContains(t, err, "localization catalog")

	cfg = &config.ServiceConfig{}
	cfg.Kafka.Enabled = true
	_, err = NewEngine(context.Background(), cfg, &dismissingExecutor{})
	require.ErrorContains(t, err, "outcome publisher")
}

func TestInitLoggerWithOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	dir := t.TempDir()

	err := InitLoggerWithOptions(config.LogConfig{Format: "json", Level: "debug"}, LoggerOptions{
		Logger:      logger,
		ServiceName: "recovery-test",
		NodeID:      "node-7",
		Stdout:      &buf,
		FileConfig:  &LogFileConfig{Enabled: true, Dir: dir},
	})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "recovery-test", line["service"])
	assert.Equal(t, "node-7", line["node_id"])

	_, err = os.Lstat(filepath.Join(dir, "recovery-test.log"))
	assert.NoError(t, err)
}

func TestInitLoggerWithOptions_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()

	require.NoError(t, InitLoggerWithOptions(config.LogConfig{Format: "text", Level: "loud"}, LoggerOptions{
		Logger: logger,
		Stdout: &buf,
	}))
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestInitTracing(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), config.TracingConfig{Exporter: "disabled"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	shutdown, err = InitTracing(context.Background(), config.TracingConfig{Exporter: "zipkin"})
	require.Error(t, err)
	require.NoError(t, shutdown(context.Background()))

	shutdown, err = InitTracing(context.Background(), config.TracingConfig{
		Exporter:     "stdout",
		ServiceName:  "recovery-test",
		ResourceTags: map[string]string{"team": "payments"},
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := InitRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = InitRedis(context.Background(), config.RedisConfig{Addr: addr})
	require.ErrorContains(t, err, "ping redis")
}
