// Package audio produces the CHIP-8 buzzer: a square wave that plays
// for as long as the sound timer is active.
package audio

import "encoding/binary"

const (
	// SampleRate is the number of samples per second produced.
	SampleRate = 44100
	// DefaultTone is the frequency of the buzzer in Hz.
	DefaultTone = 440
	// DefaultAmplitude is the peak value of the wave.
	DefaultAmplitude = 1500
)

// SquareWave generates a mono signed 16-bit square wave. Its phase is
// kept between calls to Fill, so consecutive buffers join up.
type SquareWave struct {
	Amplitude int16

	halfPeriod uint32
	index      uint32
}

// NewSquareWave returns a square wave of the given frequency, sampled
// at SampleRate. Frequencies outside of the audible range are clamped
// so that a half period is at least one sample.
func NewSquareWave(tone int) *SquareWave {
	if tone <= 0 {
		tone = DefaultTone
	}
	half := uint32(SampleRate / tone / 2)
	if half == 0 {
		half = 1
	}
	return &SquareWave{Amplitude: DefaultAmplitude, halfPeriod: half}
}

// Fill writes the next len(buf) samples of the wave into buf.
func (s *SquareWave) Fill(buf []int16) {
	for i := range buf {
		if (s.index/s.halfPeriod)%2 == 1 {
			buf[i] = s.Amplitude
		} else {
			buf[i] = -s.Amplitude
		}
		s.index++
	}
}

// Bytes returns the next n samples encoded as little-endian bytes,
// the layout expected by an AUDIO_S16LSB device.
func (s *SquareWave) Bytes(n int) []byte {
	samples := make([]int16, n)
	s.Fill(samples)

	b := make([]byte, n*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	return b
}
