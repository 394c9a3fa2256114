package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	Version = 1

	TypeOrderCreated = "order.created"
)

// Envelope is the JSON body published for every notification. Message keeps
// the plain-text line older subscribers match on.
type Envelope struct {
	Version     int       `json:"v"`
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"ts"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Message     string    `json:"message"`
}

// NewOrderCreated builds the notification for a freshly committed order.
func NewOrderCreated(orderID int64, orderNumber string) *Envelope {
	return &Envelope{
		Version:     Version,
		Type:        TypeOrderCreated,
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UTC(),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Message:     fmt.Sprintf("New order created: %d", orderID),
	}
}

func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses a published notification.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}
