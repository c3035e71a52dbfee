// Package idgen derives record ids from the creation timestamp.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Timestamp hands out Unix-millisecond ids. When two ids are requested within
// the same millisecond the later one is bumped, so ids stay unique and increasing.
type Timestamp struct {
	mu   sync.Mutex
	last int64
	nowF func() time.Time
}

// NewTimestamp returns a generator reading the wall clock.
func NewTimestamp() *Timestamp {
	return NewTimestampWithClock(time.Now)
}

// NewTimestampWithClock returns a generator reading nowF.
func NewTimestampWithClock(nowF func() time.Time) *Timestamp {
	return &Timestamp{nowF: nowF}
}

// Next returns the next id.
func (g *Timestamp) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nowF().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return strconv.FormatInt(id, 10)
}
