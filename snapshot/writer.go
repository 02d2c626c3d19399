package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"floe/domain/orderbook"
)

const fileName = "snapshot.bin"

type Writer struct {
	Dir string
}

// Write persists the book view and the WAL sequence it covers. The
// write goes to a temp file first so a crash never leaves a torn
// snapshot behind.
func (w *Writer) Write(seq uint64, view orderbook.BookView) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, len(view.BuyOrders)+len(view.SellOrders)),
	}
	for _, o := range view.BuyOrders {
		s.Orders = append(s.Orders, fromOrder(o))
	}
	for _, o := range view.SellOrders {
		s.Orders = append(s.Orders, fromOrder(o))
	}

	tmp := filepath.Join(w.Dir, fileName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(w.Dir, fileName))
}

func fromOrder(o orderbook.Order) OrderEntry {
	return OrderEntry{
		ID:        o.Key.ID,
		Side:      int(o.Key.Side),
		Price:     o.Key.Price,
		Visible:   o.Visible,
		Hidden:    o.Hidden,
		Peak:      o.Peak,
		Timestamp: o.Key.Timestamp,
	}
}
