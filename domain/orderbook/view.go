package orderbook

// BookView is a point-in-time snapshot of both sides, each ordered best
// to worst under the same price-time rule as the live trees. Entries
// are copies; mutating them does not touch book state.
type BookView struct {
	BuyOrders  []Order
	SellOrders []Order
}

// Orders materializes the current book. It does not mutate state, and
// repeated calls with no intervening ProcessOrder yield identical
// views.
func (b *Orderbook) Orders() BookView {
	return BookView{
		BuyOrders:  b.materialize(b.buys.Keys()),
		SellOrders: b.materialize(b.sells.Keys()),
	}
}

func (b *Orderbook) materialize(keys []OrderKey) []Order {
	out := make([]Order, 0, len(keys))
	for _, k := range keys {
		out = append(out, *b.resolve(k))
	}
	return out
}
