// Package cache implements the two-tier recording collection cache: a
// session-lifetime in-memory copy and a durable CSV artifact on disk.
//
// The disk artifact wins: every load deserializes it over whatever the
// session holds, and only when neither tier has a collection does a full
// network refresh run. After every load the collection is re-encoded to
// disk, atomically.
package cache
