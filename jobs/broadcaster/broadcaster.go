// Package broadcaster drains the fill outbox to Kafka. Delivery is
// at-least-once: a fill is marked SENT before the publish and ACKED
// after the broker confirms, so a crash in between re-sends it.
package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"floe/infra/outbox"
	"floe/service"
)

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// Event is the published fill, versioned for downstream consumers.
type Event struct {
	V        int    `json:"v"`
	Type     string `json:"type"`
	Seq      uint64 `json:"seq"`
	TakerID  uint64 `json:"takerId"`
	MakerID  uint64 `json:"makerId"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

func New(
	box *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

func (b *Broadcaster) Run(ctx context.Context) {
	log.Println("[broadcaster] started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
			if _, err := b.box.PurgeAcked(); err != nil {
				log.Printf("[broadcaster] purge failed: %v", err)
			}
		}
	}
}

func (b *Broadcaster) drainOnce() {
	_ = b.box.ScanPending(func(rec *outbox.Record) error {
		fill, err := service.DecodeFill(rec.Payload)
		if err != nil {
			// A payload that cannot decode will never send; park it.
			log.Printf("[broadcaster] undecodable fill seq=%d: %v", rec.Seq, err)
			return nil
		}

		if err := b.box.MarkSent(rec.Seq); err != nil {
			return err
		}

		value, err := json.Marshal(Event{
			V:        1,
			Type:     "fill",
			Seq:      rec.Seq,
			TakerID:  fill.TakerID,
			MakerID:  fill.MakerID,
			Quantity: fill.Quantity,
			Price:    fill.Price,
		})
		if err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(value),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // stays SENT, retried next tick
		}

		return b.box.MarkAcked(rec.Seq)
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
