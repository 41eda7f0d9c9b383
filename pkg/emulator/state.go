package emulator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"
)

// StateExtension is the file extension of save state files.
const StateExtension = ".c8s"

// Fingerprint returns the hash used to identify a ROM.
func Fingerprint(rom []byte) uint64 {
	return xxhash.Sum64(rom)
}

// StateFile returns the default path of the save state for rom,
// inside dir. Each ROM is identified by its fingerprint, so renamed
// copies of the same ROM share their state.
func StateFile(dir string, rom []byte) string {
	return filepath.Join(dir, fmt.Sprintf("%016x%s", Fingerprint(rom), StateExtension))
}

// WriteState writes a save state to path. The state is first
// written to a temporary file which is then renamed, so an
// interrupted write never corrupts an existing state.
func WriteState(path string, b []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadState reads the save state stored at path.
func ReadState(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state %s: %w", path, err)
	}
	return b, nil
}
