package service

import (
	"log"

	"floe/domain/orderbook"
	"floe/infra/outbox"
	"floe/infra/sequence"
	"floe/infra/wal"
)

// ReplayFromWAL rebuilds in-memory state from the entry WAL. Records at
// or below fromSeq (covered by a loaded snapshot) are skipped. It MUST
// run before the service accepts traffic. Fills re-produced during
// replay are discarded: the outbox was written durably the first time
// around and is not replayed.
func ReplayFromWAL(
	walDir string,
	fromSeq uint64,
	book *orderbook.Orderbook,
	seqGen *sequence.Sequencer,
) (uint64, error) {
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Type != wal.RecordSubmit || rec.Seq <= fromSeq {
			return nil
		}
		sub, err := DecodeSubmission(rec.Data)
		if err != nil {
			return err
		}
		_ = book.ProcessOrder(sub.Order())
		return nil
	})
	if err != nil {
		return 0, err
	}
	if lastSeq < fromSeq {
		lastSeq = fromSeq
	}
	seqGen.Reset(lastSeq)

	log.Printf("[replay] entry WAL replay complete (last seq = %d, %d resting orders)", lastSeq, book.Len())
	return lastSeq, nil
}

// ResumeSequencer bumps the sequencer past any fill sequences still
// sitting in the outbox, so new fills never overwrite undelivered ones.
func ResumeSequencer(seqGen *sequence.Sequencer, box *outbox.Outbox) error {
	return box.ScanPending(func(rec *outbox.Record) error {
		if rec.Seq > seqGen.Current() {
			seqGen.Reset(rec.Seq)
		}
		return nil
	})
}
