package service

import (
	"sync"

	"floe/domain/orderbook"
	"floe/infra/outbox"
	"floe/infra/sequence"
	"floe/infra/wal"
)

// OrderService is the only write entry point into the engine.
type OrderService struct {
	mu     sync.Mutex
	book   *orderbook.Orderbook
	seqGen *sequence.Sequencer
	wal    *wal.WAL
	box    *outbox.Outbox
}

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	book *orderbook.Orderbook,
	seqGen *sequence.Sequencer,
	w *wal.WAL,
	box *outbox.Outbox,
) *OrderService {
	return &OrderService{
		book:   book,
		seqGen: seqGen,
		wal:    w,
		box:    box,
	}
}

// Submit runs one order through the engine: WAL intent first, then the
// match, then the durable outbox entry per fill. The three steps are
// one atomic unit under the service lock; fills come back in emission
// order. Admission checks (duplicate IDs, price sanity) belong to the
// caller; a non-positive quantity is the one documented no-op here.
func (s *OrderService) Submit(
	id uint64,
	side orderbook.Side,
	price int64,
	qty int64,
	peak int64,
) (uint64, []orderbook.FillEvent, error) {
	if qty <= 0 {
		return 0, nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := Submission{ID: id, Side: side, Price: price, Qty: qty, Peak: peak}
	seq := s.seqGen.Next()

	if err := s.wal.Append(wal.NewRecord(wal.RecordSubmit, seq, EncodeSubmission(sub))); err != nil {
		return 0, nil, err
	}

	fills := s.book.ProcessOrder(sub.Order())

	for _, f := range fills {
		if err := s.box.Put(s.seqGen.Next(), EncodeFill(f)); err != nil {
			return seq, fills, err
		}
	}
	return seq, fills, nil
}

// Snapshot returns a read-only view of both sides, best to worst.
func (s *OrderService) Snapshot() orderbook.BookView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Orders()
}

// checkpoint captures a consistent (view, seq) pair for the snapshot
// job.
func (s *OrderService) checkpoint() (orderbook.BookView, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Orders(), s.seqGen.Current()
}
