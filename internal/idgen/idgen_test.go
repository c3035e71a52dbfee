package idgen

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_UsesTimestamp(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewTimestampWithClock(func() time.Time { return now })

	assert.Equal(t, "1700000000000", g.Next())
}

func TestNext_StrictlyIncreasingOnSameMillisecond(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewTimestampWithClock(func() time.Time { return now })

	assert.Equal(t, "1700000000000", g.Next())
	assert.Equal(t, "1700000000001", g.Next())
	assert.Equal(t, "1700000000002", g.Next())

	now = now.Add(time.Second)
	assert.Equal(t, "1700000001000", g.Next())
}

func TestNext_UniqueUnderConcurrency(t *testing.T) {
	g := NewTimestamp()
	const n = 200

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
	for id := range seen {
		_, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err)
	}
}
