// Package snapshot persists a point-in-time image of the book so a
// restart replays only the WAL tail written after it. Entries keep
// their logical timestamps, so queue positions survive a restore.
package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

type OrderEntry struct {
	ID        uint64
	Side      int
	Price     int64
	Visible   int64
	Hidden    int64
	Peak      int64
	Timestamp uint64
}
