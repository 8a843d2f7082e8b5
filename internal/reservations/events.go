package reservations

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"campground/pkg/logger"
)

// EventType tags a reservation lifecycle event on the wire.
type EventType string

const (
	EventReservationCreated       EventType = "reservation.created"
	EventReservationUpdated       EventType = "reservation.updated"
	EventReservationStatusChanged EventType = "reservation.status_changed"
	EventReservationNoteAdded     EventType = "reservation.note_added"
)

// LifecycleEvent is the JSON payload published for every reservation change.
type LifecycleEvent struct {
	Type          EventType `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	SpotID        uuid.UUID `json:"spot_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	Status        Status    `json:"status"`
	PrevStatus    Status    `json:"prev_status,omitempty"`
	TotalPrice    float64   `json:"total_price"`
	Deposit       float64   `json:"deposit"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventProducer publishes lifecycle events. A nil *KafkaEventProducer is a
// valid producer that drops everything, so brokerless deployments need no
// conditional wiring.
type EventProducer interface {
	Publish(event LifecycleEvent)
	Close() error
}

type KafkaEventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventProducer connects a synchronous producer. Returns (nil, nil)
// when no brokers are configured.
func NewKafkaEventProducer(brokers []string, topic string) (*KafkaEventProducer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return &KafkaEventProducer{producer: producer, topic: topic}, nil
}

// Publish sends the event, keyed by reservation id so one reservation's
// events stay ordered. Failures are logged, never surfaced: the write that
// triggered the event has already committed.
func (p *KafkaEventProducer) Publish(event LifecycleEvent) {
	if p == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.GetDefault().Error("failed to marshal lifecycle event", "error", err, "type", string(event.Type))
		return
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ReservationID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		logger.GetDefault().Error("failed to publish lifecycle event",
			"error", err, "type", string(event.Type), "reservation_id", event.ReservationID.String())
		return
	}
	logger.GetDefault().Debug("lifecycle event published",
		"type", string(event.Type), "partition", partition, "offset", offset)
}

func (p *KafkaEventProducer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
