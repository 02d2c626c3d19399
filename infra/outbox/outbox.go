// Package outbox is the durable fill outbox. Every fill produced by
// the matching core is persisted here before it may be published, so a
// crash between matching and broadcast re-sends instead of dropping.
package outbox

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// Record is one outbox entry. Payload is the encoded fill event; the
// outbox itself never interprets it.
type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// value encoding: [state:1][retries:4][lastAttempt:8][payload]
func encodeValue(r *Record) []byte {
	buf := make([]byte, 13+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[13:], r.Payload)
	return buf
}

func decodeValue(seq uint64, b []byte) (*Record, error) {
	if len(b) < 13 {
		return nil, errors.New("outbox: short record")
	}
	return &Record{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     append([]byte(nil), b[13:]...),
	}, nil
}

// Outbox is a Pebble-backed state machine per fill:
// NEW -> SENT -> ACKED -> deleted.
type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability is the point
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// Put inserts a NEW entry. Called by the order service inside the
// submission path, synced before the call returns.
func (o *Outbox) Put(seq uint64, payload []byte) error {
	rec := Record{Seq: seq, State: StateNew, Payload: payload}
	return o.db.Set(keyFor(seq), encodeValue(&rec), pebble.Sync)
}

// MarkSent flips an entry to SENT and bumps its retry counter.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.transition(seq, StateSent)
}

// MarkAcked flips an entry to ACKED once the broker confirmed it.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.transition(seq, StateAcked)
}

func (o *Outbox) transition(seq uint64, to State) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = to
	if to == StateSent {
		rec.Retries++
	}
	rec.LastAttempt = time.Now().UnixNano()
	return o.db.Set(keyFor(seq), encodeValue(rec), pebble.Sync)
}

// Delete removes one entry.
func (o *Outbox) Delete(seq uint64) error {
	return o.db.Delete(keyFor(seq), pebble.Sync)
}

// Get returns the current record for a fill.
func (o *Outbox) Get(seq uint64) (*Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	seqOut, err := parseKey(keyFor(seq))
	if err != nil {
		return nil, err
	}
	return decodeValue(seqOut, val)
}

// ScanPending visits every NEW and SENT record in seq order. SENT
// records are included so an interrupted send is retried.
func (o *Outbox) ScanPending(fn func(rec *Record) error) error {
	return o.scan(func(rec *Record) error {
		if rec.State == StateAcked {
			return nil
		}
		return fn(rec)
	})
}

// PurgeAcked deletes every ACKED record and returns how many went.
func (o *Outbox) PurgeAcked() (int, error) {
	purged := 0
	err := o.scan(func(rec *Record) error {
		if rec.State != StateAcked {
			return nil
		}
		if err := o.Delete(rec.Seq); err != nil {
			return err
		}
		purged++
		return nil
	})
	return purged, err
}

func (o *Outbox) scan(fn func(rec *Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeValue(seq, iter.Value())
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

const keyPrefix = "fill/"

// Fixed-width keys keep Pebble's byte order equal to seq order.
func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(b), keyPrefix+"%d", &seq)
	return seq, err
}
