package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"floe/domain/orderbook"
)

type Loader struct {
	Dir string
}

// Load reads the snapshot if one exists. A missing file is a fresh
// start, not an error; ok reports whether a snapshot was restored.
func (l *Loader) Load(book *orderbook.Orderbook) (seq uint64, ok bool, err error) {
	f, err := os.Open(filepath.Join(l.Dir, fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, false, err
	}

	for _, e := range s.Orders {
		book.Restore(&orderbook.Order{
			Key: orderbook.OrderKey{
				ID:        e.ID,
				Side:      orderbook.Side(e.Side),
				Price:     e.Price,
				Timestamp: e.Timestamp,
			},
			Visible: e.Visible,
			Hidden:  e.Hidden,
			Peak:    e.Peak,
		})
	}
	return s.Seq, true, nil
}
