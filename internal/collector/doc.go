// Package collector drives the full recording-metadata collection pass:
// every licensed user crossed with a rolling set of monthly windows, fetched
// strictly one window at a time, each raw meeting normalized into the flat
// analysis-ready record set.
//
// A failed (user, window) pair is logged and skipped so one bad window does
// not void the rest of the collection.
package collector
