package messaging

import (
	"context"
	"fmt"
	"log"
	"time"

	"mescore/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttConnectWait = 5 * time.Second

// MQTTNotifier publishes at QoS 1. The paho client keeps retrying the
// initial connection in the background and reconnects after drops.
type MQTTNotifier struct {
	conn mqtt.Client
}

func NewMQTTNotifier(cfg *config.MQTTConfig) *MQTTNotifier {
	broker := fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port)
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Printf("notify: connected to mqtt %s", broker)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("notify: mqtt connection lost: %v", err)
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectWait) {
		log.Printf("notify: mqtt %s not reachable yet, retrying in background", broker)
	} else if err := token.Error(); err != nil {
		log.Printf("notify: mqtt connect: %v", err)
	}
	return &MQTTNotifier{conn: client}
}

func (m *MQTTNotifier) Name() string { return "mqtt" }

func (m *MQTTNotifier) Publish(ctx context.Context, channel string, payload []byte) error {
	if !m.conn.IsConnected() {
		return fmt.Errorf("mqtt publish %s: not connected", channel)
	}
	token := m.conn.Publish(channel, 1, false, payload)
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt publish %s: %w", channel, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mqtt publish %s: %w", channel, ctx.Err())
	}
}

func (m *MQTTNotifier) Close() error {
	m.conn.Disconnect(1000)
	return nil
}
