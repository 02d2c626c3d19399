package orderbook

// Side distinguishes the two halves of the book.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// OrderKey is the sortable projection of an order held by the side
// trees. Timestamp is a logical arrival counter assigned by the book,
// not wall-clock time; it changes when an iceberg slice is replenished,
// which is how the order loses its queue position.
type OrderKey struct {
	ID        uint64
	Side      Side
	Price     int64
	Timestamp uint64
}

// Order is the authoritative record of one order. Visible is the
// quantity currently eligible to match; Hidden is the iceberg reserve
// behind it; Peak is the replenishment target for the visible slice.
type Order struct {
	Key     OrderKey
	Visible int64
	Hidden  int64
	Peak    int64
}

// NewOrder builds a plain limit order ready for ProcessOrder.
func NewOrder(id uint64, side Side, price, qty int64) *Order {
	return &Order{
		Key:     OrderKey{ID: id, Side: side, Price: price},
		Visible: qty,
	}
}

// NewIcebergOrder builds an order that exposes at most peak units of
// total at a time, refilling the visible slice from the hidden reserve
// as it is consumed.
func NewIcebergOrder(id uint64, side Side, price, total, peak int64) *Order {
	visible := peak
	if total < peak {
		visible = total
	}
	return &Order{
		Key:     OrderKey{ID: id, Side: side, Price: price},
		Visible: visible,
		Hidden:  total - visible,
		Peak:    peak,
	}
}

// Empty reports whether nothing remains on either the visible slice or
// the hidden reserve.
func (o *Order) Empty() bool {
	return o.Visible == 0 && o.Hidden == 0
}

// IsIceberg reports whether the order still holds a hidden reserve. An
// order that started as an iceberg but has exhausted its reserve is no
// longer treated as one.
func (o *Order) IsIceberg() bool {
	return o.Hidden > 0
}

// replenish moves up to Peak units from the hidden reserve into the
// visible slice. Callers invoke it only once the visible slice is
// exhausted, and handle re-keying themselves.
func (o *Order) replenish() {
	take := o.Peak
	if take > o.Hidden {
		take = o.Hidden
	}
	o.Visible = take
	o.Hidden -= take
}

// FillEvent records one match. Price is always the resting (maker)
// order's price.
type FillEvent struct {
	TakerID  uint64
	MakerID  uint64
	Quantity int64
	Price    int64
}
