package service

import (
	"encoding/binary"
	"errors"

	"floe/domain/orderbook"
)

// Submission is the wire form of one accepted order, as logged to the
// entry WAL. Peak > 0 marks an iceberg order; Qty is always the total
// quantity, visible and hidden together.
type Submission struct {
	ID    uint64
	Side  orderbook.Side
	Price int64
	Qty   int64
	Peak  int64
}

// [id:8][side:1][price:8][qty:8][peak:8]
const submissionLen = 33

var errBadSubmission = errors.New("service: malformed submission payload")

func EncodeSubmission(s Submission) []byte {
	buf := make([]byte, submissionLen)
	binary.BigEndian.PutUint64(buf[0:8], s.ID)
	buf[8] = byte(s.Side)
	binary.BigEndian.PutUint64(buf[9:17], uint64(s.Price))
	binary.BigEndian.PutUint64(buf[17:25], uint64(s.Qty))
	binary.BigEndian.PutUint64(buf[25:33], uint64(s.Peak))
	return buf
}

func DecodeSubmission(b []byte) (Submission, error) {
	if len(b) != submissionLen {
		return Submission{}, errBadSubmission
	}
	return Submission{
		ID:    binary.BigEndian.Uint64(b[0:8]),
		Side:  orderbook.Side(b[8]),
		Price: int64(binary.BigEndian.Uint64(b[9:17])),
		Qty:   int64(binary.BigEndian.Uint64(b[17:25])),
		Peak:  int64(binary.BigEndian.Uint64(b[25:33])),
	}, nil
}

// Order rebuilds the transient order ProcessOrder consumes.
func (s Submission) Order() *orderbook.Order {
	if s.Peak > 0 {
		return orderbook.NewIcebergOrder(s.ID, s.Side, s.Price, s.Qty, s.Peak)
	}
	return orderbook.NewOrder(s.ID, s.Side, s.Price, s.Qty)
}

// [taker:8][maker:8][qty:8][price:8]
const fillLen = 32

var errBadFill = errors.New("service: malformed fill payload")

func EncodeFill(f orderbook.FillEvent) []byte {
	buf := make([]byte, fillLen)
	binary.BigEndian.PutUint64(buf[0:8], f.TakerID)
	binary.BigEndian.PutUint64(buf[8:16], f.MakerID)
	binary.BigEndian.PutUint64(buf[16:24], uint64(f.Quantity))
	binary.BigEndian.PutUint64(buf[24:32], uint64(f.Price))
	return buf
}

func DecodeFill(b []byte) (orderbook.FillEvent, error) {
	if len(b) != fillLen {
		return orderbook.FillEvent{}, errBadFill
	}
	return orderbook.FillEvent{
		TakerID:  binary.BigEndian.Uint64(b[0:8]),
		MakerID:  binary.BigEndian.Uint64(b[8:16]),
		Quantity: int64(binary.BigEndian.Uint64(b[16:24])),
		Price:    int64(binary.BigEndian.Uint64(b[24:32])),
	}, nil
}
