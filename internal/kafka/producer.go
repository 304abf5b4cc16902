package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEventItem is one booked seat inside an order event.
type TicketEventItem struct {
	FlightID     int64  `json:"flight_id"`
	FlightNumber string `json:"flight_number"`
	SeatClass    string `json:"seat_class"`
	Row          int    `json:"row"`
	Seat         int    `json:"seat"`
	Passenger    string `json:"passenger"`
}

// OrderEvent is published after an order commits.
type OrderEvent struct {
	Type         string            `json:"type"`
	Reference    string            `json:"reference"`
	UserID       int64             `json:"user_id"`
	ContactEmail string            `json:"contact_email"`
	CreatedAt    time.Time         `json:"created_at"`
	Tickets      []TicketEventItem `json:"tickets"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
