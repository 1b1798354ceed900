package domalens

import (
	"context"

	"github.com/segmentio/kafka-go"
)

const LiveEventTopic = "domalens_live_event"

type KWriter struct {
	w *kafka.Writer
}

// NewKWriter returns an async writer; Write never waits for the broker.
func NewKWriter(topic string, uri string) (*KWriter, error) {
	w := &kafka.Writer{
		Addr:     kafka.TCP(uri),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Async:    true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("kafka deliver failed", "topic", topic, "messages", len(messages), "err", err)
			}
		},
	}

	return &KWriter{
		w: w,
	}, nil
}

func (kw *KWriter) Write(body []byte) error {
	return kw.w.WriteMessages(
		context.Background(),
		kafka.Message{
			Value: body,
		},
	)
}

func (kw *KWriter) Close() {
	if err := kw.w.Close(); err != nil {
		log.Error("close kafka writer", "err", err)
	}
}
