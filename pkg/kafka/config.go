package kafka

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"
)

// Config defines the Kafka connection and producer settings for outcome events.
type Config struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`

	// RequiredAcks is "none", "one" or "all" (default all).
	RequiredAcks string `yaml:"required_acks" mapstructure:"required_acks"`
	// MaxAttempts is the producer retry budget, at least 3.
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// Validate reports settings the producer cannot be built from.
func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka brokers empty")
	}
	if _, err := requiredAcks(c.RequiredAcks); err != nil {
		return err
	}
	if _, _, err := saslMechanism(c.SASLMechanism); err != nil {
		return err
	}
	return nil
}

func (c Config) saramaConfig() (*sarama.Config, error) {
	acks, err := requiredAcks(c.RequiredAcks)
	if err != nil {
		return nil, err
	}

	sc := sarama.NewConfig()
	sc.Version = sarama.V2_1_0_0
	if c.ClientID != "" {
		sc.ClientID = c.ClientID
	}
	sc.Producer.Return.Successes = true
	sc.Producer.Return.Errors = true
	sc.Producer.RequiredAcks = acks
	sc.Producer.Retry.Max = max(c.MaxAttempts, 3)

	if c.TLSEnabled {
		sc.Net.TLS.Enable = true
		sc.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if c.Username == "" {
		return sc, nil
	}
	mechanism, hash, err := saslMechanism(c.SASLMechanism)
	if err != nil {
		return nil, err
	}
	sc.Net.SASL.Enable = true
	sc.Net.SASL.User = c.Username
	sc.Net.SASL.Password = c.Password
	sc.Net.SASL.Mechanism = mechanism
	if hash != nil {
		sc.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramConversation{hash: hash}
		}
	}
	return sc, nil
}

func requiredAcks(v string) (sarama.RequiredAcks, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all":
		return sarama.WaitForAll, nil
	case "one":
		return sarama.WaitForLocal, nil
	case "none":
		return sarama.NoResponse, nil
	default:
		return 0, fmt.Errorf("kafka required_acks %q not one of none, one, all", v)
	}
}

// saslMechanism maps the configured name; hash is nil for PLAIN.
func saslMechanism(v string) (sarama.SASLMechanism, scram.HashGeneratorFcn, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "", "PLAIN":
		return sarama.SASLTypePlaintext, nil, nil
	case "SCRAM-SHA-256":
		return sarama.SASLTypeSCRAMSHA256, scram.SHA256, nil
	case "SCRAM-SHA-512":
		return sarama.SASLTypeSCRAMSHA512, scram.SHA512, nil
	default:
		return "", nil, fmt.Errorf("kafka sasl_mechanism %q not supported", v)
	}
}

// scramConversation implements sarama.SCRAMClient on top of xdg-go/scram.
type scramConversation struct {
	hash scram.HashGeneratorFcn
	conv *scram.ClientConversation
}

func (s *scramConversation) Begin(user, password, authzID string) error {
	client, err := s.hash.NewClient(user, password, authzID)
	if err != nil {
		return fmt.Errorf("scram client: %w", err)
	}
	s.conv = client.NewConversation()
	return nil
}

func (s *scramConversation) Step(challenge string) (string, error) {
	if s.conv == nil {
		return "", errors.New("scram conversation not started")
	}
	return s.conv.Step(challenge)
}

func (s *scramConversation) Done() bool {
	return s.conv != nil && s.conv.Done()
}
