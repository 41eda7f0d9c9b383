package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptForFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{"plain", "roms/pong.ch8\n", "roms/pong.ch8", nil},
		{"no newline", "pong.ch8", "pong.ch8", nil},
		{"quoted", "  \"my roms/pong.ch8\"  \n", "my roms/pong.ch8", nil},
		{"empty", "\n", "", ErrNoFile},
		{"eof", "", "", ErrNoFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := PromptForFile(strings.NewReader(tt.input), &out, "Enter ROM file: ")
			assert.Equal(t, "Enter ROM file: ", out.String())
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}
