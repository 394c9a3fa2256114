package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mescore/config"

	kafkago "github.com/segmentio/kafka-go"
)

// KafkaNotifier writes each notification as one message on the channel topic.
type KafkaNotifier struct {
	w *kafkago.Writer
}

func NewKafkaNotifier(cfg *config.KafkaConfig) *KafkaNotifier {
	log.Printf("notify: kafka writer for %s", strings.Join(cfg.Brokers, ","))
	return &KafkaNotifier{
		w: &kafkago.Writer{
			Addr:                   kafkago.TCP(cfg.Brokers...),
			Balancer:               &kafkago.LeastBytes{},
			RequiredAcks:           kafkago.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *KafkaNotifier) Name() string { return "kafka" }

func (k *KafkaNotifier) Publish(ctx context.Context, channel string, payload []byte) error {
	err := k.w.WriteMessages(ctx, kafkago.Message{
		Topic: channel,
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("kafka publish %s: %w", channel, err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.w.Close()
}
