//go:build !test

package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	// bufferSamples is the size of the device buffer, and of each
	// chunk queued to it.
	bufferSamples = 1024
	// queueAhead is how many chunks are kept queued while beeping.
	queueAhead = 3
)

// Device plays a SquareWave through an SDL audio device while it is
// active. It satisfies the emulator's Beeper interface.
type Device struct {
	id     sdl.AudioDeviceID
	wave   *SquareWave
	active atomic.Bool

	mu     sync.Mutex // guards the wave and queue
	stop   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// OpenAudio opens the default audio device to play a buzzer of the
// given tone.
func OpenAudio(tone int) (*Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	id, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferSamples,
	}, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}

	d := &Device{
		id:   id,
		wave: NewSquareWave(tone),
		stop: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.feed()

	return d, nil
}

// SetActive starts or stops the buzzer.
func (d *Device) SetActive(active bool) {
	if d.active.Swap(active) == active {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if !active {
		sdl.ClearQueuedAudio(d.id)
	} else {
		d.queue()
	}
	sdl.PauseAudioDevice(d.id, !active)
}

// feed tops up the device queue while the buzzer is active.
func (d *Device) feed() {
	defer d.wg.Done()

	interval := time.Second * bufferSamples / SampleRate / 2
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			if !d.active.Load() {
				continue
			}
			d.mu.Lock()
			d.queue()
			d.mu.Unlock()
		}
	}
}

// queue must be called with mu held.
func (d *Device) queue() {
	for sdl.GetQueuedAudioSize(d.id) < bufferSamples*2*queueAhead {
		if err := sdl.QueueAudio(d.id, d.wave.Bytes(bufferSamples)); err != nil {
			return
		}
	}
}

// Close stops the buzzer and releases the audio device.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.mu.Unlock()

	close(d.stop)
	d.wg.Wait()

	sdl.PauseAudioDevice(d.id, true)
	sdl.ClearQueuedAudio(d.id)
	sdl.CloseAudioDevice(d.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	return nil
}
