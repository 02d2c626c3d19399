package wal

import "time"

type RecordType uint8

const (
	RecordSubmit RecordType = iota
)

// Record is one framed log entry. Data is opaque to the WAL; the
// service layer owns the payload encoding.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
