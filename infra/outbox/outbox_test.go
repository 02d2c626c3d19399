package outbox

import (
	"bytes"
	"testing"
)

func TestPutScanLifecycle(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	if err := ob.Put(1, []byte("fill-1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := ob.Put(2, []byte("fill-2")); err != nil {
		t.Fatalf("put: %v", err)
	}

	var seen []uint64
	_ = ob.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("pending scan = %v, want [1 2] in seq order", seen)
	}

	if err := ob.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := ob.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}

	rec, err := ob.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateAcked || rec.Retries != 1 {
		t.Errorf("record = %+v, want ACKED with 1 retry", rec)
	}
	if !bytes.Equal(rec.Payload, []byte("fill-1")) {
		t.Errorf("payload corrupted: %q", rec.Payload)
	}

	// Acked records leave the pending scan, sent ones stay.
	if err := ob.MarkSent(2); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	seen = seen[:0]
	_ = ob.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		return nil
	})
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("pending scan after ack = %v, want [2]", seen)
	}
}

func TestPurgeAcked(t *testing.T) {
	ob, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	defer ob.Close()

	for seq := uint64(1); seq <= 3; seq++ {
		_ = ob.Put(seq, []byte("payload"))
	}
	_ = ob.MarkSent(2)
	_ = ob.MarkAcked(2)

	purged, err := ob.PurgeAcked()
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged %d, want 1", purged)
	}
	if _, err := ob.Get(2); err == nil {
		t.Error("acked record should be gone after purge")
	}
}

func TestPendingSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	ob, err := Open(dir)
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	_ = ob.Put(7, []byte("durable"))
	if err := ob.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	ob, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer ob.Close()

	rec, err := ob.Get(7)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if rec.State != StateNew || !bytes.Equal(rec.Payload, []byte("durable")) {
		t.Errorf("record = %+v, want NEW/durable", rec)
	}
}
