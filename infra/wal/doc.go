// Package wal is the append-only submission log. Every accepted order
// is framed and appended here before the book is mutated, so a restart
// can replay the log and arrive at the identical book state. Segments
// rotate by size and are truncated once a snapshot covers them.
package wal
