// Package depth publishes the book snapshot to a market-data topic on
// a timer. Consumers get the same best-to-worst view the snapshot
// operation exposes; hidden iceberg reserves are never included.
package depth

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"floe/infra/kafka"
	"floe/service"
)

type Publisher struct {
	svc      *service.OrderService
	producer *kafka.Producer
	interval time.Duration
}

type level struct {
	ID      uint64 `json:"id"`
	Price   int64  `json:"price"`
	Visible int64  `json:"visible"`
}

type book struct {
	V     int     `json:"v"`
	Buys  []level `json:"buys"`
	Sells []level `json:"sells"`
}

func New(svc *service.OrderService, producer *kafka.Producer, interval time.Duration) *Publisher {
	return &Publisher{svc: svc, producer: producer, interval: interval}
}

func (p *Publisher) Run(ctx context.Context) {
	log.Println("[depth] started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.publishOnce(ctx); err != nil {
				log.Printf("[depth] publish failed: %v", err)
			}
		}
	}
}

func (p *Publisher) publishOnce(ctx context.Context) error {
	view := p.svc.Snapshot()

	msg := book{V: 1}
	for _, o := range view.BuyOrders {
		msg.Buys = append(msg.Buys, level{ID: o.Key.ID, Price: o.Key.Price, Visible: o.Visible})
	}
	for _, o := range view.SellOrders {
		msg.Sells = append(msg.Sells, level{ID: o.Key.ID, Price: o.Key.Price, Visible: o.Visible})
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.producer.Send(ctx, []byte("book"), value)
}
