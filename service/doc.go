// Package service orchestrates the engine's components (orderbook,
// WAL, outbox, sequencer) behind one write entry point.
//
// The matching core is a single-writer structure; OrderService is that
// single writer. One mutex guards the whole unit (book, WAL, outbox
// inserts), never individual fields, so transports may call in from any
// number of goroutines.
package service
