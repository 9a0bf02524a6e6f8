package trajectory

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/xkilldash9x/cursortrace/internal/recording"
)

// Cache memoizes Build results per recording id so the O(n) forward pass
// runs once no matter how many queries follow; an export worker and a
// scrubbing UI hitting the same recording share one trajectory.
//
// Builds for the same recording are deduplicated with singleflight; if three
// goroutines ask for an uncached recording simultaneously, one pays for the
// pass and all three receive the same pointer.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Trajectory
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Trajectory)}
}

// Get returns the trajectory for rec, building it on first use. Recordings
// without an id (never touched by the codec) are built uncached rather than
// risking collisions under the empty key.
func (c *Cache) Get(rec *recording.Recording, tuning Tuning) *Trajectory {
	if rec.ID == "" {
		return Build(rec, tuning)
	}

	c.mu.RLock()
	traj, ok := c.entries[rec.ID]
	c.mu.RUnlock()
	if ok {
		return traj
	}

	v, _, _ := c.group.Do(rec.ID, func() (interface{}, error) {
		built := Build(rec, tuning)
		c.mu.Lock()
		c.entries[rec.ID] = built
		c.mu.Unlock()
		return built, nil
	})
	return v.(*Trajectory)
}

// Evict drops one recording's cached trajectory.
func (c *Cache) Evict(recordingID string) {
	c.mu.Lock()
	delete(c.entries, recordingID)
	c.mu.Unlock()
}
