package messaging

import (
	"context"
	"log"

	"mescore/config"
)

// Notifier publishes a payload to a named channel or topic.
type Notifier interface {
	Name() string
	Publish(ctx context.Context, channel string, payload []byte) error
	Close() error
}

// New builds the notifier selected by cfg.Backend. Broker connections are
// attempted optimistically; a broker that is down at startup is logged and
// the notifier is returned anyway so publishes can succeed once it recovers.
// An unknown backend falls back to the no-op notifier.
func New(cfg *config.NotifyConfig) Notifier {
	switch cfg.Backend {
	case "redis":
		return NewRedisNotifier(&cfg.Redis)
	case "kafka":
		return NewKafkaNotifier(&cfg.Kafka)
	case "mqtt":
		return NewMQTTNotifier(&cfg.MQTT)
	case "none", "":
		return NopNotifier{}
	default:
		log.Printf("notify: unknown backend %q, notifications disabled", cfg.Backend)
		return NopNotifier{}
	}
}

// NopNotifier discards every message.
type NopNotifier struct{}

func (NopNotifier) Name() string                                   { return "none" }
func (NopNotifier) Publish(context.Context, string, []byte) error { return nil }
func (NopNotifier) Close() error                                   { return nil }
