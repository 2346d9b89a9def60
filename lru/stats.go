package lru

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Name      string
	Capacity  int
	Len       int
	Inserts   uint64
	Refreshes uint64
	Evictions uint64
	Hits      uint64
	Misses    uint64

	// Lifetime spans from cache construction to the snapshot.
	Lifetime timespan.TimeSpan
}

// HitRatio returns Hits / (Hits + Misses), or 0 when Get was never called.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type counters struct {
	inserts   uint64
	refreshes uint64
	evictions uint64
	hits      uint64
	misses    uint64
}

func (c counters) snapshot(name string, capacity, length int, createdAt time.Time) Stats {
	return Stats{
		Name:      name,
		Capacity:  capacity,
		Len:       length,
		Inserts:   c.inserts,
		Refreshes: c.refreshes,
		Evictions: c.evictions,
		Hits:      c.hits,
		Misses:    c.misses,
		Lifetime:  timespan.BetweenTimes(createdAt, time.Now()),
	}
}
