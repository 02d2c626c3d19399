package service

import (
	"context"
	"log"
	"time"

	"floe/snapshot"
)

// SnapshotJob periodically persists the book and truncates the WAL
// segments the snapshot now covers.
type SnapshotJob struct {
	svc      *OrderService
	writer   *snapshot.Writer
	interval time.Duration
}

func NewSnapshotJob(svc *OrderService, writer *snapshot.Writer, interval time.Duration) *SnapshotJob {
	return &SnapshotJob{svc: svc, writer: writer, interval: interval}
}

func (j *SnapshotJob) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runOnce()
		}
	}
}

func (j *SnapshotJob) runOnce() {
	view, seq := j.svc.checkpoint()

	if err := j.writer.Write(seq, view); err != nil {
		log.Printf("[snapshot] write failed: %v", err)
		return
	}
	if err := j.svc.wal.TruncateBefore(seq); err != nil {
		log.Printf("[snapshot] wal truncate failed: %v", err)
		return
	}
	log.Printf("[snapshot] wrote seq %d (%d orders)", seq, len(view.BuyOrders)+len(view.SellOrders))
}
