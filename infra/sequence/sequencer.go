package sequence

import "sync/atomic"

// Sequencer issues strictly monotonic submission sequence numbers.
// Deterministic and replay-safe: after WAL replay it is Reset to the
// last replayed sequence and continues from there.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. Fresh start uses 0; replay passes the last
// recovered sequence.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset jumps the sequencer forward. Only used after WAL replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
