package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const StatsTopic = "admin-stats"

type Config struct {
	Addrs      []string `envconfig:"KAFKA_ADDRS"`
	StatsTopic string   `envconfig:"KAFKA_STATS_TOPIC" default:"admin-stats"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventStats struct {
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	ID        string    `json:"id,omitempty"`
	Count     int       `json:"count,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Errors = true
	defaultCfg.Producer.Flush.Frequency = 500 * time.Millisecond

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}
