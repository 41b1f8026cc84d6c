package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ActivityEvent mirrors the realtime events onto the analytics topic.
type ActivityEvent struct {
	Type      string `json:"type"` // new-post / delete-post
	PostID    uint64 `json:"post_id"`
	VenueID   uint64 `json:"venue_id"`
	UserID    uint64 `json:"user_id,omitempty"`
	EventTime string `json:"event_time"`
}

func NewKafkaProducer(cfg KafkaConfig) *KafkaProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// SendActivity is nil-safe so callers can hold an unconfigured producer.
func (p *KafkaProducer) SendActivity(ctx context.Context, ev ActivityEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}
	if ev.EventTime == "" {
		ev.EventTime = time.Now().UTC().Format(time.RFC3339Nano)
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", ev.VenueID)),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}
