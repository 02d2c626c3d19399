package orderbook

import (
	"fmt"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// compareKeys orders keys within one side's tree so that the leftmost
// key is the next to match: price priority first (buy high, sell low),
// then the earlier timestamp. Timestamps are unique, so the order is
// total without ever consulting the ID.
func compareKeys(a, b OrderKey) int {
	if a.Price != b.Price {
		best := a.Price > b.Price
		if a.Side == Sell {
			best = a.Price < b.Price
		}
		if best {
			return -1
		}
		return 1
	}
	switch {
	case a.Timestamp < b.Timestamp:
		return -1
	case a.Timestamp > b.Timestamp:
		return 1
	}
	return 0
}

// Orderbook is the matching core. It owns the authoritative record of
// every resting order; the side trees are pure indexes over the map.
type Orderbook struct {
	orders map[uint64]*Order
	buys   *rbt.Tree[OrderKey, struct{}]
	sells  *rbt.Tree[OrderKey, struct{}]
	clock  uint64
}

// New creates an empty book.
func New() *Orderbook {
	return &Orderbook{
		orders: make(map[uint64]*Order),
		buys:   rbt.NewWith[OrderKey, struct{}](compareKeys),
		sells:  rbt.NewWith[OrderKey, struct{}](compareKeys),
	}
}

// ProcessOrder matches an incoming order against the opposite side
// until it is filled, the book no longer crosses, or the book is
// exhausted; any remainder rests. The incoming order is consumed: after
// the call the book owns it, and the caller must not treat it as live
// state. Fills are returned in emission order. A zero-quantity order is
// a no-op.
func (b *Orderbook) ProcessOrder(o *Order) []FillEvent {
	var fills []FillEvent

	opposite := b.sells
	if o.Key.Side == Sell {
		opposite = b.buys
	}

	for o.Visible != 0 {
		best := opposite.Left()
		if best == nil {
			b.rest(o)
			break
		}
		bestKey := best.Key
		if !crosses(o.Key, bestKey) {
			// The opposite best is the most favorable price
			// available, so nothing deeper can cross either.
			b.rest(o)
			break
		}

		maker := b.resolve(bestKey)
		qty := min(o.Visible, maker.Visible)
		fills = append(fills, FillEvent{
			TakerID:  o.Key.ID,
			MakerID:  maker.Key.ID,
			Quantity: qty,
			Price:    maker.Key.Price,
		})
		o.Visible -= qty
		maker.Visible -= qty

		switch {
		case maker.Empty():
			opposite.Remove(bestKey)
			delete(b.orders, maker.Key.ID)
		case maker.Visible == 0:
			// Iceberg slice exhausted: refill and requeue with a
			// fresh timestamp, behind its price level.
			opposite.Remove(bestKey)
			maker.replenish()
			b.clock++
			maker.Key.Timestamp = b.clock
			opposite.Put(maker.Key, struct{}{})
		}

		if o.Visible == 0 && o.IsIceberg() {
			// Not yet in any tree, so no timestamp needed here.
			o.replenish()
		}
	}

	return fills
}

// crosses reports whether the incoming order and the best opposite
// resting order are willing to trade.
func crosses(taker, maker OrderKey) bool {
	if taker.Side == Sell {
		return taker.Price <= maker.Price
	}
	return taker.Price >= maker.Price
}

// rest assigns the next timestamp and stores the remaining slice as a
// resting order on its own side.
func (b *Orderbook) rest(o *Order) {
	b.clock++
	o.Key.Timestamp = b.clock
	b.orders[o.Key.ID] = o
	b.side(o.Key.Side).Put(o.Key, struct{}{})
}

// Restore reinstates a previously resting order with its timestamp
// intact, preserving queue position. Used when loading a snapshot; the
// clock never moves backwards.
func (b *Orderbook) Restore(o *Order) {
	if o.Key.Timestamp > b.clock {
		b.clock = o.Key.Timestamp
	}
	b.orders[o.Key.ID] = o
	b.side(o.Key.Side).Put(o.Key, struct{}{})
}

func (b *Orderbook) side(s Side) *rbt.Tree[OrderKey, struct{}] {
	if s == Buy {
		return b.buys
	}
	return b.sells
}

// resolve maps a tree key back to its record. A missing record means
// the two indexes have desynchronized; matching on corrupted state is
// unsafe, so this is fatal.
func (b *Orderbook) resolve(k OrderKey) *Order {
	o, ok := b.orders[k.ID]
	if !ok {
		panic(fmt.Sprintf("orderbook: key %d in %v tree has no record", k.ID, k.Side))
	}
	return o
}

// Len returns the number of resting orders.
func (b *Orderbook) Len() int {
	return len(b.orders)
}
