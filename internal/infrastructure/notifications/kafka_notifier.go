// Package notifications announces new admin panel quotes.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer is the part of *kgo.Client the notifier uses.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// orcamentoEvent is the message published for every new quote.
type orcamentoEvent struct {
	Event     string             `json:"event"`
	Orcamento entities.Orcamento `json:"orcamento"`
	SentAt    time.Time          `json:"sent_at"`
}

// publishTimeout bounds each ProduceSync call.
const publishTimeout = 3 * time.Second

type KafkaNotifier struct {
	producer Producer
	topic    string
	timeout  time.Duration
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(producer Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic, timeout: publishTimeout}
}

// NewKafkaClient builds a producer-only franz-go client.
func NewKafkaClient(brokers []string) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(10*time.Millisecond),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return client, nil
}

func (n *KafkaNotifier) NotifyNewOrcamento(ctx context.Context, o entities.Orcamento) error {
	payload, err := json.Marshal(orcamentoEvent{Event: "orcamento.criado", Orcamento: o, SentAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal orcamento event: %w", err)
	}

	record := &kgo.Record{
		Topic: n.topic,
		Key:   []byte(o.ID),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event", Value: []byte("orcamento.criado")},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := n.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to publish orcamento %s: %w", o.ID, err)
	}
	log.Printf("[notifications][kafka] orcamento=%s published to %s", o.ID, n.topic)
	return nil
}

// LogNotifier only logs. It is used when no broker is configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) NotifyNewOrcamento(_ context.Context, o entities.Orcamento) error {
	log.Printf("[notifications][log] novo orcamento id=%s nome=%s produto=%s", o.ID, o.Nome, o.Produto)
	return nil
}
