package kafka

import (
    "context"
    "fmt"
    "time"

    "github.com/goccy/go-json"
    kafkago "github.com/segmentio/kafka-go"

    "xeni/internal/ports"
)

const eventTierChanged = "case.tier_changed"

// Publisher writes case events to a kafka topic, keyed by case id so events
// for one case stay ordered.
type Publisher struct {
    w *kafkago.Writer
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string) *Publisher {
    return &Publisher{w: &kafkago.Writer{
        Addr:         kafkago.TCP(brokers...),
        Topic:        topic,
        Balancer:     &kafkago.Hash{},
        RequiredAcks: kafkago.RequireOne,
        BatchTimeout: 50 * time.Millisecond,
    }}
}

func (p *Publisher) PublishTierChanged(ctx context.Context, evt ports.TierChanged) error {
    msg, err := encode(evt)
    if err != nil {
        return err
    }
    if err := p.w.WriteMessages(ctx, msg); err != nil {
        return fmt.Errorf("publish %s for %s: %w", eventTierChanged, evt.CaseID, err)
    }
    return nil
}

func encode(evt ports.TierChanged) (kafkago.Message, error) {
    value, err := json.Marshal(evt)
    if err != nil {
        return kafkago.Message{}, err
    }
    return kafkago.Message{
        Key:     []byte(evt.CaseID),
        Value:   value,
        Headers: []kafkago.Header{{Key: "event-type", Value: []byte(eventTierChanged)}},
        Time:    evt.At,
    }, nil
}

func (p *Publisher) Close() error { return p.w.Close() }
