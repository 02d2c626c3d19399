package wal

import (
	"fmt"
	"os"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}

	const n = 100
	for i := 1; i <= n; i++ {
		rec := NewRecord(RecordSubmit, uint64(i), []byte(fmt.Sprintf("order-%d", i)))
		if err := w.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
		if i%20 == 0 {
			_ = w.Sync()
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	count := 0
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordSubmit {
			t.Fatalf("unexpected record type %v", rec.Type)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != n || lastSeq != n {
		t.Fatalf("replayed %d records (last seq %d), want %d", count, lastSeq, n)
	}
}

func TestRotation(t *testing.T) {
	dir := t.TempDir()

	w, err := Open(Config{Dir: dir, SegmentSize: 64})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	for i := 1; i <= 10; i++ {
		if err := w.Append(NewRecord(RecordSubmit, uint64(i), []byte("rotate-me"))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	files, _ := os.ReadDir(dir)
	if len(files) < 2 {
		t.Fatalf("expected rotated segments, found %d files", len(files))
	}

	// Replay must walk segments in order.
	var seqs []uint64
	if _, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay across segments: %v", err)
	}
	if len(seqs) != 10 {
		t.Fatalf("replayed %d records, want 10", len(seqs))
	}
}

func TestReopenAppendsToLastSegment(t *testing.T) {
	dir := t.TempDir()

	w, _ := Open(Config{Dir: dir})
	_ = w.Append(NewRecord(RecordSubmit, 1, []byte("a")))
	_ = w.Close()

	w, err := Open(Config{Dir: dir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = w.Append(NewRecord(RecordSubmit, 2, []byte("b")))
	_ = w.Close()

	count := 0
	if _, err := Replay(dir, func(*Record) error { count++; return nil }); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 2 {
		t.Fatalf("replayed %d records after reopen, want 2", count)
	}
}

func TestTruncateBefore(t *testing.T) {
	dir := t.TempDir()

	w, _ := Open(Config{Dir: dir, SegmentSize: 64})
	for i := 1; i <= 10; i++ {
		_ = w.Append(NewRecord(RecordSubmit, uint64(i), []byte("payload")))
	}

	if err := w.TruncateBefore(5); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	_ = w.Close()

	_, err := Replay(dir, func(rec *Record) error {
		if rec.Seq <= 5 {
			// Partial segments spanning the boundary survive.
			return nil
		}
		return nil
	})
	if err != nil {
		t.Fatalf("replay after truncate: %v", err)
	}

	files, _ := os.ReadDir(dir)
	if len(files) == 0 {
		t.Fatal("truncate must never remove the current segment")
	}
}

func TestCorruptRecordStopsReplay(t *testing.T) {
	dir := t.TempDir()

	w, _ := Open(Config{Dir: dir})
	_ = w.Append(NewRecord(RecordSubmit, 1, []byte("good")))
	_ = w.Close()

	files, _ := os.ReadDir(dir)
	path := dir + "/" + files[0].Name()
	b, _ := os.ReadFile(path)
	b[len(b)-1] ^= 0xFF // flip a CRC byte
	_ = os.WriteFile(path, b, 0o644)

	_, err := Replay(dir, func(*Record) error { return nil })
	if err != ErrCorruptRecord {
		t.Fatalf("expected ErrCorruptRecord, got %v", err)
	}
}
