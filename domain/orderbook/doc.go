// Package orderbook implements the matching core of a continuous
// double auction: a resting book of buy and sell orders matched under
// price-time priority, with iceberg (partially hidden) order support.
//
// The book is a single-writer structure. It holds no locks and performs
// no I/O; one owning goroutine must serialize every ProcessOrder and
// Orders call. The identifier map owns the authoritative record of each
// resting order, and the two side trees index only lightweight keys;
// quantity is never read from a tree, always through the map.
package orderbook
