package trajectory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xkilldash9x/cursortrace/internal/recording"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func cachedRecording(id string) *recording.Recording {
	return &recording.Recording{
		ID: id,
		Events: []recording.PointerEvent{
			move(0, 0, 0),
			move(500, 1, 1),
		},
	}
}

func TestCache_MemoizesPerRecordingID(t *testing.T) {
	cache := NewCache()
	tuning := DefaultTuning()
	rec := cachedRecording("rec-1")

	first := cache.Get(rec, tuning)
	second := cache.Get(rec, tuning)

	require.NotNil(t, first)
	assert.Same(t, first, second, "the forward pass must run once per recording")

	other := cache.Get(cachedRecording("rec-2"), tuning)
	assert.NotSame(t, first, other)
}

func TestCache_ConcurrentGetsShareOneBuild(t *testing.T) {
	cache := NewCache()
	tuning := DefaultTuning()
	rec := cachedRecording("rec-contended")

	const goroutines = 16
	results := make([]*Trajectory, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = cache.Get(rec, tuning)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestCache_EvictForcesRebuild(t *testing.T) {
	cache := NewCache()
	tuning := DefaultTuning()
	rec := cachedRecording("rec-evict")

	before := cache.Get(rec, tuning)
	cache.Evict(rec.ID)
	after := cache.Get(rec, tuning)

	assert.NotSame(t, before, after)
	// Rebuilding an immutable recording reproduces the same checkpoints.
	assert.Equal(t, before.Checkpoints(), after.Checkpoints())
}

func TestCache_UnidentifiedRecordingBypassesCache(t *testing.T) {
	cache := NewCache()
	tuning := DefaultTuning()
	rec := cachedRecording("")

	first := cache.Get(rec, tuning)
	second := cache.Get(rec, tuning)

	assert.NotSame(t, first, second)
}
