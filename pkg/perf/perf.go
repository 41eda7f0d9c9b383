// Package perf records how long the emulator takes to produce each
// frame, and plots the result.
package perf

import (
	"errors"
	"image"
	"sync"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultCapacity keeps a minute of samples at 60 frames per second.
const DefaultCapacity = 3600

// ErrNoSamples is returned when plotting a Recorder that has not
// recorded anything.
var ErrNoSamples = errors.New("no frame times recorded")

// Recorder keeps the most recent frame times in a ring. It is safe
// for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	full    bool

	count uint64
	total time.Duration
	worst time.Duration
}

// NewRecorder returns a Recorder keeping up to capacity samples.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{samples: make([]time.Duration, max(capacity, 1))}
}

// Record adds a frame time.
func (r *Recorder) Record(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[r.next] = d
	r.next = (r.next + 1) % len(r.samples)
	if r.next == 0 {
		r.full = true
	}

	r.count++
	r.total += d
	r.worst = max(r.worst, d)
}

// Count returns the number of frames recorded.
func (r *Recorder) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Average returns the mean of every recorded frame time.
func (r *Recorder) Average() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return 0
	}
	return r.total / time.Duration(r.count)
}

// Worst returns the longest recorded frame time.
func (r *Recorder) Worst() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.worst
}

// Samples returns the retained frame times, oldest first.
func (r *Recorder) Samples() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]time.Duration(nil), r.samples[:r.next]...)
	}
	out := make([]time.Duration, 0, len(r.samples))
	out = append(out, r.samples[r.next:]...)
	return append(out, r.samples[:r.next]...)
}

// Plot builds a line plot of the retained frame times in milliseconds.
func (r *Recorder) Plot() (*plot.Plot, error) {
	samples := r.Samples()
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = "Frame Time"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "ms"

	xys := make(plotter.XYs, len(samples))
	for i, d := range samples {
		xys[i].X = float64(i)
		xys[i].Y = float64(d) / float64(time.Millisecond)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p.Add(line, plotter.NewGrid())

	return p, nil
}

// Image renders the plot into a width x height image.
func (r *Recorder) Image(width, height int) (image.Image, error) {
	p, err := r.Plot()
	if err != nil {
		return nil, err
	}

	c := vgimg.NewWith(vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, width, height))))
	p.Draw(draw.New(c))
	return c.Image(), nil
}

// Save writes the plot to filename. The format follows the file
// extension (png, svg, pdf, ...).
func (r *Recorder) Save(filename string) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
