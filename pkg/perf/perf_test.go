package perf

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Statistics(t *testing.T) {
	r := NewRecorder(10)
	assert.Zero(t, r.Average())

	for _, ms := range []int{10, 20, 30} {
		r.Record(time.Duration(ms) * time.Millisecond)
	}

	assert.Equal(t, uint64(3), r.Count())
	assert.Equal(t, 20*time.Millisecond, r.Average())
	assert.Equal(t, 30*time.Millisecond, r.Worst())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, r.Samples())
}

func TestRecorder_Wraps(t *testing.T) {
	r := NewRecorder(3)
	for i := 1; i <= 5; i++ {
		r.Record(time.Duration(i))
	}

	assert.Equal(t, []time.Duration{3, 4, 5}, r.Samples())
	assert.Equal(t, uint64(5), r.Count())
	// the average covers every frame, not only those retained
	assert.Equal(t, time.Duration(3), r.Average())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder(DefaultCapacity)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(time.Millisecond)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(800), r.Count())
}

func TestRecorder_Plot(t *testing.T) {
	r := NewRecorder(DefaultCapacity)
	_, err := r.Plot()
	assert.ErrorIs(t, err, ErrNoSamples)

	for i := 0; i < 120; i++ {
		r.Record(16*time.Millisecond + time.Duration(i%7)*time.Millisecond)
	}

	img, err := r.Image(320, 160)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "frametime.png")
	require.NoError(t, r.Save(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
