package messaging

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	brokers []string

	// Writers are created lazily from concurrent request and timer
	// goroutines, so the map needs the lock.
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

func (kp *KafkaProducer) getWriter(topic string) *kafka.Writer {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	if writer, exists := kp.writers[topic]; exists {
		return writer
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kp.brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	kp.writers[topic] = writer
	return writer
}

func (kp *KafkaProducer) SendMessage(topic string, key string, value interface{}) error {
	writer := kp.getWriter(topic)

	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: jsonData,
	}

	return writer.WriteMessages(context.Background(), message)
}

func (kp *KafkaProducer) Close() {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	for _, writer := range kp.writers {
		writer.Close()
	}
}

// Event types for async processing

// CartEvent records a cart mutation for downstream analytics.
type CartEvent struct {
	Type      string `json:"type"` // added, incremented, decremented, removed, cleared
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	ItemCount int    `json:"item_count"`
}

// CheckoutEvent is emitted when a simulated checkout completes.
type CheckoutEvent struct {
	Type      string      `json:"type"` // cart, buy-now
	SessionID string      `json:"session_id"`
	Total     float64     `json:"total"`
	Items     interface{} `json:"items"`
}

// ToastEvent mirrors the notification widget lifecycle so a frontend
// listener can render toasts.
type ToastEvent struct {
	Type       string `json:"type"` // shown, dismissed
	ToastID    string `json:"toast_id"`
	SessionID  string `json:"session_id"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	DurationMs int64  `json:"duration_ms"`
}
