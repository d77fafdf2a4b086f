package handler

import (
	"encoding/json"
	"time"

	"github.com/Astemirdum/book-exchange-admin/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	ActionListed  = "listed"
	ActionViewed  = "viewed"
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	ResourceBook   = "book"
	ResourceReader = "reader"
)

type StatsLog interface {
	Log(sl kafka.EventStats) error
}

type statsLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewStatsLog(producer sarama.AsyncProducer, topic string) StatsLog {
	if producer == nil {
		return nopStatsLog{}
	}
	return &statsLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *statsLog) Log(sl kafka.EventStats) error {
	data, err := json.Marshal(sl)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Key: sarama.StringEncoder(sl.Resource), Value: sarama.ByteEncoder(data)}
	l.producer.Input() <- msg
	return nil
}

type nopStatsLog struct{}

func (nopStatsLog) Log(kafka.EventStats) error { return nil }

func (h *Handler) recordStats(c echo.Context, action, resource, id string, count int) {
	ev := kafka.EventStats{
		Action:    action,
		Resource:  resource,
		ID:        id,
		Count:     count,
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		Timestamp: time.Now().UTC(),
	}
	if err := h.stats.Log(ev); err != nil {
		h.log.Warn("stats log", zap.Error(err), zap.String("action", action))
	}
}
