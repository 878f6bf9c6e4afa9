package bootstrap

import (
	"time"

	"github.com/Goden-Gun/payment-recovery/pkg/kafka"
	log "github.com/Goden-Gun/payment-recovery/pkg/logger"
)

// slowDelivery is the latency above which a delivery is logged at warn.
const slowDelivery = 2 * time.Second

// InitKafka 初始化 outcome 事件生产者，并记录失败或过慢的投递
func InitKafka(cfg kafka.Config) (*kafka.Producer, error) {
	p, err := kafka.NewProducer(cfg)
	if err != nil {
		log.Errorf("kafka初始化失败: %v", err)
		return nil, err
	}
	p.OnDelivery(func(d kafka.Delivery) {
		entry := log.WithFields(log.Fields{
			"topic":      d.Topic,
			"partition":  d.Partition,
			"latency_ms": d.Latency.Milliseconds(),
		})
		switch {
		case d.Err != nil:
			entry.WithError(d.Err).Warn("kafka delivery failed")
		case d.Latency > slowDelivery:
			entry.Warn("kafka delivery slow")
		}
	})
	log.WithField("brokers", cfg.Brokers).Info("kafka initialized successfully")
	return p, nil
}
