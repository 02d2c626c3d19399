package orderbook

import (
	"reflect"
	"testing"
)

func TestRestOnEmptyBook(t *testing.T) {
	book := New()
	fills := book.ProcessOrder(NewOrder(1, Buy, 100, 10))
	if len(fills) != 0 {
		t.Fatalf("expected no fills, got %d", len(fills))
	}
	view := book.Orders()
	if len(view.BuyOrders) != 1 || len(view.SellOrders) != 0 {
		t.Fatalf("expected one resting buy, got %+v", view)
	}
	if o := view.BuyOrders[0]; o.Key.Price != 100 || o.Visible != 10 {
		t.Errorf("resting buy = %+v, want price 100 qty 10", o)
	}
}

func TestPartialFillRestsRemainder(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(2, Sell, 100, 5))

	fills := book.ProcessOrder(NewOrder(3, Buy, 100, 8))
	if len(fills) != 1 {
		t.Fatalf("expected one fill, got %d", len(fills))
	}
	want := FillEvent{TakerID: 3, MakerID: 2, Quantity: 5, Price: 100}
	if fills[0] != want {
		t.Errorf("fill = %+v, want %+v", fills[0], want)
	}

	view := book.Orders()
	if len(view.SellOrders) != 0 {
		t.Error("filled sell order should have been removed")
	}
	if len(view.BuyOrders) != 1 || view.BuyOrders[0].Visible != 3 {
		t.Errorf("remainder should rest as buy qty 3, got %+v", view.BuyOrders)
	}
}

func TestNoCrossRestsUnmatched(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Sell, 100, 10))

	fills := book.ProcessOrder(NewOrder(6, Buy, 50, 10))
	if len(fills) != 0 {
		t.Fatalf("50 does not cross 100, expected no fills, got %d", len(fills))
	}
	view := book.Orders()
	if len(view.BuyOrders) != 1 || view.BuyOrders[0].Key.Price != 50 {
		t.Errorf("buy should rest at 50, got %+v", view.BuyOrders)
	}
	if len(view.SellOrders) != 1 {
		t.Error("sell should be untouched")
	}
}

func TestZeroQuantityIsNoop(t *testing.T) {
	book := New()
	fills := book.ProcessOrder(NewOrder(1, Buy, 100, 0))
	if len(fills) != 0 || book.Len() != 0 {
		t.Error("zero-quantity order must not fill or rest")
	}
}

func TestPricePriority(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Sell, 102, 5))
	book.ProcessOrder(NewOrder(2, Sell, 100, 5))
	book.ProcessOrder(NewOrder(3, Sell, 101, 5))

	fills := book.ProcessOrder(NewOrder(4, Buy, 102, 15))
	if len(fills) != 3 {
		t.Fatalf("expected 3 fills, got %d", len(fills))
	}
	wantMakers := []uint64{2, 3, 1}
	wantPrices := []int64{100, 101, 102}
	for i, f := range fills {
		if f.MakerID != wantMakers[i] || f.Price != wantPrices[i] {
			t.Errorf("fill %d = %+v, want maker %d at %d", i, f, wantMakers[i], wantPrices[i])
		}
	}
}

func TestTimePriorityWithinLevel(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Buy, 100, 5))
	book.ProcessOrder(NewOrder(2, Buy, 100, 5))
	book.ProcessOrder(NewOrder(3, Buy, 100, 5))

	fills := book.ProcessOrder(NewOrder(4, Sell, 100, 12))
	wantMakers := []uint64{1, 2, 3}
	if len(fills) != 3 {
		t.Fatalf("expected 3 fills, got %d", len(fills))
	}
	for i, f := range fills {
		if f.MakerID != wantMakers[i] {
			t.Errorf("fill %d matched maker %d, want %d (FIFO)", i, f.MakerID, wantMakers[i])
		}
	}
	// id=3 keeps the unmatched 3 units
	view := book.Orders()
	if len(view.BuyOrders) != 1 || view.BuyOrders[0].Key.ID != 3 || view.BuyOrders[0].Visible != 3 {
		t.Errorf("expected buy id=3 qty=3 left, got %+v", view.BuyOrders)
	}
}

func TestIcebergReplenishLosesQueuePosition(t *testing.T) {
	book := New()
	book.ProcessOrder(NewIcebergOrder(4, Sell, 100, 20, 5))

	fills := book.ProcessOrder(NewOrder(5, Buy, 100, 5))
	if len(fills) != 1 || fills[0].Quantity != 5 {
		t.Fatalf("expected one fill of 5, got %+v", fills)
	}

	view := book.Orders()
	if len(view.SellOrders) != 1 {
		t.Fatal("iceberg should still rest")
	}
	ice := view.SellOrders[0]
	if ice.Visible != 5 || ice.Hidden != 10 {
		t.Errorf("after refill visible=%d hidden=%d, want 5/10", ice.Visible, ice.Hidden)
	}

	// An equal-price sell arriving now goes ahead of the refilled slice.
	book.ProcessOrder(NewOrder(6, Sell, 100, 4))
	fills = book.ProcessOrder(NewOrder(7, Buy, 100, 4))
	if len(fills) != 1 || fills[0].MakerID != 6 {
		t.Errorf("refilled iceberg must lose time priority, fills = %+v", fills)
	}
}

func TestIcebergDrainsToExhaustion(t *testing.T) {
	book := New()
	book.ProcessOrder(NewIcebergOrder(1, Sell, 100, 12, 5))

	fills := book.ProcessOrder(NewOrder(2, Buy, 100, 12))
	var total int64
	for _, f := range fills {
		if f.MakerID != 1 {
			t.Fatalf("unexpected maker %d", f.MakerID)
		}
		total += f.Quantity
	}
	if total != 12 {
		t.Errorf("filled %d, want full 12", total)
	}
	if book.Len() != 0 {
		t.Error("exhausted iceberg must be removed")
	}
}

func TestIncomingIcebergReplenishesMidMatch(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Sell, 100, 4))
	book.ProcessOrder(NewOrder(2, Sell, 100, 4))
	book.ProcessOrder(NewOrder(3, Sell, 100, 4))

	// Visible slice of 4 must refill twice to sweep all 12.
	fills := book.ProcessOrder(NewIcebergOrder(4, Buy, 100, 12, 4))
	if len(fills) != 3 {
		t.Fatalf("expected 3 fills, got %d", len(fills))
	}
	if book.Len() != 0 {
		t.Errorf("book should be empty, %d orders left", book.Len())
	}
}

func TestIncomingIcebergRemainderRestsWithReserve(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Sell, 100, 3))

	book.ProcessOrder(NewIcebergOrder(2, Buy, 100, 20, 5))
	view := book.Orders()
	if len(view.BuyOrders) != 1 {
		t.Fatal("iceberg remainder should rest")
	}
	rest := view.BuyOrders[0]
	if rest.Visible+rest.Hidden != 17 {
		t.Errorf("visible=%d hidden=%d, want 17 total outstanding", rest.Visible, rest.Hidden)
	}
	if rest.Visible > rest.Peak {
		t.Errorf("visible %d exceeds peak %d", rest.Visible, rest.Peak)
	}
}

func TestQuantityConservation(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Sell, 100, 7))
	book.ProcessOrder(NewIcebergOrder(2, Sell, 101, 9, 3))

	incoming := NewOrder(3, Buy, 101, 20)
	fills := book.ProcessOrder(incoming)

	var filled int64
	for _, f := range fills {
		filled += f.Quantity
	}
	view := book.Orders()
	var outstanding int64
	for _, o := range append(view.BuyOrders, view.SellOrders...) {
		outstanding += o.Visible + o.Hidden
	}
	// 7+9 resting plus 20 incoming; every unit is either filled twice
	// (once per side) or still outstanding.
	if filled != 16 {
		t.Errorf("filled %d, want 16", filled)
	}
	if outstanding != 20-filled {
		t.Errorf("outstanding %d, want %d", outstanding, 20-filled)
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Buy, 99, 5))
	book.ProcessOrder(NewOrder(2, Sell, 101, 5))
	book.ProcessOrder(NewIcebergOrder(3, Sell, 102, 30, 10))

	a := book.Orders()
	b := book.Orders()
	if !reflect.DeepEqual(a, b) {
		t.Error("back-to-back snapshots differ")
	}
}

func TestSnapshotOrderingAndIcebergVisibility(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Buy, 99, 5))
	book.ProcessOrder(NewOrder(2, Buy, 101, 5))
	book.ProcessOrder(NewOrder(3, Buy, 100, 5))
	book.ProcessOrder(NewIcebergOrder(4, Sell, 105, 50, 5))

	view := book.Orders()
	wantBuys := []int64{101, 100, 99}
	for i, o := range view.BuyOrders {
		if o.Key.Price != wantBuys[i] {
			t.Errorf("buy %d at %d, want %d (best first)", i, o.Key.Price, wantBuys[i])
		}
	}
	if ice := view.SellOrders[0]; ice.Visible != 5 {
		t.Errorf("iceberg exposes %d, want peak slice 5", ice.Visible)
	}
}

func TestRestoreKeepsQueuePosition(t *testing.T) {
	book := New()
	book.ProcessOrder(NewOrder(1, Buy, 100, 5))
	book.ProcessOrder(NewOrder(2, Buy, 100, 5))

	// Rebuild a fresh book from the snapshot.
	view := book.Orders()
	rebuilt := New()
	for i := range view.BuyOrders {
		o := view.BuyOrders[i]
		rebuilt.Restore(&o)
	}

	fills := rebuilt.ProcessOrder(NewOrder(3, Sell, 100, 5))
	if len(fills) != 1 || fills[0].MakerID != 1 {
		t.Errorf("restored book must keep FIFO, fills = %+v", fills)
	}

	// New arrivals must still get fresh, larger timestamps.
	rebuilt.ProcessOrder(NewOrder(4, Buy, 100, 5))
	v := rebuilt.Orders()
	if last := v.BuyOrders[len(v.BuyOrders)-1]; last.Key.ID != 4 {
		t.Errorf("new order should queue last, got %+v", v.BuyOrders)
	}
}

func BenchmarkProcessOrderRest(b *testing.B) {
	book := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate non-crossing sides so the book stays two-sided.
		if i%2 == 0 {
			book.ProcessOrder(NewOrder(uint64(i), Buy, 100, 1))
		} else {
			book.ProcessOrder(NewOrder(uint64(i), Sell, 200, 1))
		}
	}
}

func BenchmarkProcessOrderMatch(b *testing.B) {
	book := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.ProcessOrder(NewOrder(uint64(i)*2, Sell, 100, 1))
		book.ProcessOrder(NewOrder(uint64(i)*2+1, Buy, 100, 1))
	}
}
