package kafka

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Message is one record handed to the Producer. An empty Topic means the
// configured topic.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// Delivery is the result of one Send.
type Delivery struct {
	Topic     string
	Partition int32
	Offset    int64
	Latency   time.Duration
	Err       error
}

// Producer wraps a sarama sync producer shared by every publisher in the
// process. Trace context is carried in the record headers.
type Producer struct {
	cfg        Config
	sync       sarama.SyncProducer
	onDelivery atomic.Pointer[func(Delivery)]
	closeOnce  sync.Once
}

// NewProducer validates cfg and dials the brokers.
func NewProducer(cfg Config) (*Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc, err := cfg.saramaConfig()
	if err != nil {
		return nil, err
	}
	sp, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, err
	}
	return NewProducerWith(cfg, sp), nil
}

// NewProducerWith wraps an existing sync producer such as sarama/mocks.
func NewProducerWith(cfg Config, sp sarama.SyncProducer) *Producer {
	return &Producer{cfg: cfg, sync: sp}
}

// OnDelivery installs fn to be called after every Send. nil removes it.
func (p *Producer) OnDelivery(fn func(Delivery)) {
	if fn == nil {
		p.onDelivery.Store(nil)
		return
	}
	p.onDelivery.Store(&fn)
}

// Send publishes msg and waits for the broker acknowledgement.
func (p *Producer) Send(ctx context.Context, msg Message) (Delivery, error) {
	if p == nil || p.sync == nil {
		return Delivery{}, errors.New("kafka producer not initialized")
	}
	d := Delivery{Topic: msg.Topic}
	if d.Topic == "" {
		d.Topic = p.cfg.Topic
	}
	start := time.Now()
	switch {
	case d.Topic == "":
		d.Err = errors.New("kafka topic empty")
	case ctx.Err() != nil:
		d.Err = ctx.Err()
	default:
		d.Partition, d.Offset, d.Err = p.sync.SendMessage(p.record(ctx, d.Topic, msg))
	}
	d.Latency = time.Since(start)

	if fn := p.onDelivery.Load(); fn != nil {
		(*fn)(d)
	}
	return d, d.Err
}

func (p *Producer) record(ctx context.Context, topic string, msg Message) *sarama.ProducerMessage {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Headers {
		carrier[k] = v
	}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	keys := carrier.Keys()
	sort.Strings(keys)
	headers := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(carrier[k])})
	}

	rec := &sarama.ProducerMessage{Topic: topic, Headers: headers}
	if msg.Key != "" {
		rec.Key = sarama.StringEncoder(msg.Key)
	}
	if len(msg.Value) > 0 {
		rec.Value = sarama.ByteEncoder(msg.Value)
	}
	return rec
}

// Close shuts the underlying producer down once.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	var err error
	p.closeOnce.Do(func() {
		if p.sync != nil {
			err = p.sync.Close()
		}
	})
	return err
}
