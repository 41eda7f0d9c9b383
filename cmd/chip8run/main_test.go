package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/emulator"
)

func TestRun(t *testing.T) {
	// 200: LD V1, 0A
	// 202: LD F, V1
	// 204: DRW V0, V0, 5
	// 206: JP 206
	emu, err := emulator.New([]byte{0x61, 0x0A, 0xF1, 0x29, 0xD0, 0x05, 0x12, 0x06})
	require.NoError(t, err)

	ran, err := run(emu, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, ran)

	f := emu.Machine.Display.Frame()
	assert.Equal(t, 14, f.Lit(), "glyph A has 14 lit pixels")

	var out bytes.Buffer
	printMachine(&out, emu.Machine, ran, emu.CPU.Executed)
	assert.Regexp(t, `PC\s+206`, out.String())
	assert.Regexp(t, `V1\s+0A`, out.String())
}

func TestRun_StopsOnFatalError(t *testing.T) {
	// 200: LD I, 000
	// 202: LD [I], V0
	emu, err := emulator.New([]byte{0xA0, 0x00, 0xF0, 0x55})
	require.NoError(t, err)

	ran, err := run(emu, 10)
	assert.Error(t, err)
	assert.Zero(t, ran)
}
