package web

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"

	"github.com/thelolagemann/go-chip8/internal/types"
)

// encoder turns frames into Frame or FrameCache messages.
type encoder struct {
	compression      bool
	compressionLevel int
	frames           *cache
}

func newEncoder(cacheSize int) *encoder {
	return &encoder{
		compressionLevel: 7,
		frames:           newCache(cacheSize),
	}
}

// payload packs f and compresses it if compression is enabled. The
// caller holds the cache lock.
func (e *encoder) payload(f types.Frame) ([]byte, error) {
	packed := f.Pack()
	if !e.compression {
		return packed, nil
	}

	return cbrotli.Encode(packed, cbrotli.WriterOptions{
		Quality: e.compressionLevel,
	})
}

// encode returns the message that brings clients up to date with f.
func (e *encoder) encode(f types.Frame) ([]byte, error) {
	e.frames.Lock()
	defer e.frames.Unlock()

	output, err := e.payload(f)
	if err != nil {
		return nil, err
	}

	hash := xxhash.Sum64(output)
	cacheBuf := make([]byte, 2)

	// does this frame exist in the cache?
	if idx := e.frames.index(hash); idx != -1 {
		binary.LittleEndian.PutUint16(cacheBuf, uint16(idx))
		return append([]byte{FrameCache}, cacheBuf...), nil
	}

	binary.LittleEndian.PutUint16(cacheBuf, uint16(e.frames.add(hash, output)))
	return append(append([]byte{Frame}, cacheBuf...), output...), nil
}

// settings returns the current encoding settings.
func (e *encoder) settings() (compression bool, level int, caching bool) {
	e.frames.RLock()
	defer e.frames.RUnlock()
	return e.compression, e.compressionLevel, e.frames.enabled
}

// configure changes the encoding settings, clearing the cache when
// they differ from the current ones.
func (e *encoder) configure(compression bool, level int, caching bool) {
	e.frames.Lock()
	defer e.frames.Unlock()

	if compression != e.compression || level != e.compressionLevel || caching != e.frames.enabled {
		e.frames.reset()
	}
	e.compression = compression
	e.compressionLevel = level
	e.frames.enabled = caching
}
