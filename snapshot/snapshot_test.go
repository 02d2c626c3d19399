package snapshot

import (
	"testing"

	"floe/domain/orderbook"
)

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	book := orderbook.New()
	book.ProcessOrder(orderbook.NewOrder(1, orderbook.Buy, 100, 5))
	book.ProcessOrder(orderbook.NewOrder(2, orderbook.Buy, 100, 5))
	book.ProcessOrder(orderbook.NewIcebergOrder(3, orderbook.Sell, 105, 30, 10))

	w := &Writer{Dir: dir}
	if err := w.Write(42, book.Orders()); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	restored := orderbook.New()
	l := &Loader{Dir: dir}
	seq, ok, err := l.Load(restored)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if !ok || seq != 42 {
		t.Fatalf("seq=%d ok=%v, want 42/true", seq, ok)
	}
	if restored.Len() != 3 {
		t.Fatalf("restored %d orders, want 3", restored.Len())
	}

	// Hidden reserves survive the round trip.
	view := restored.Orders()
	if ice := view.SellOrders[0]; ice.Visible != 10 || ice.Hidden != 20 {
		t.Errorf("iceberg restored as %d/%d, want 10/20", ice.Visible, ice.Hidden)
	}

	// Queue position survives: id=1 still matches before id=2.
	fills := restored.ProcessOrder(orderbook.NewOrder(9, orderbook.Sell, 100, 5))
	if len(fills) != 1 || fills[0].MakerID != 1 {
		t.Errorf("restored book lost FIFO, fills = %+v", fills)
	}
}

func TestLoadMissingSnapshotIsFreshStart(t *testing.T) {
	l := &Loader{Dir: t.TempDir()}
	seq, ok, err := l.Load(orderbook.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || seq != 0 {
		t.Errorf("missing snapshot should report ok=false seq=0, got %v/%d", ok, seq)
	}
}
