package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
)

func TestInstruction_Jump(t *testing.T) {
	testInstruction(t, "JP 0x345", 0x1345, func(t *testing.T, c *CPU, i Instruction) {
		adv, err := c.Execute(i)
		assert.NoError(t, err)
		assert.Equal(t, AdvanceNone, adv)
		assert.Equal(t, uint16(0x345), c.m.PC)
	})
	testInstruction(t, "JP V0, 0x300", 0xB300, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[0] = 0x20
		c.m.V[1] = 0x40
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceNone, adv)
		assert.Equal(t, uint16(0x320), c.m.PC)
	})
	testInstruction(t, "CALL 0x400", 0x2400, func(t *testing.T, c *CPU, i Instruction) {
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceNone, adv)
		assert.Equal(t, uint16(0x400), c.m.PC)
		assert.Equal(t, uint8(1), c.m.SP)
		assert.Equal(t, types.ProgramStart+2, c.m.Stack[0])
	})
	testInstruction(t, "RET", 0x00EE, func(t *testing.T, c *CPU, i Instruction) {
		c.m.Push(0x2A4)
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceNone, adv)
		assert.Equal(t, uint16(0x2A4), c.m.PC)
		assert.Equal(t, uint8(0), c.m.SP)
	})
}

func TestInstruction_Skip(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		v1   uint8
		v2   uint8
		want Advance
	}{
		{"SE equal", 0x3142, 0x42, 0, AdvanceSkip},
		{"SE not equal", 0x3142, 0x41, 0, AdvanceNext},
		{"SNE equal", 0x4142, 0x42, 0, AdvanceNext},
		{"SNE not equal", 0x4142, 0x41, 0, AdvanceSkip},
		{"SE reg equal", 0x5120, 7, 7, AdvanceSkip},
		{"SE reg not equal", 0x5120, 7, 8, AdvanceNext},
		{"SNE reg equal", 0x9120, 7, 7, AdvanceNext},
		{"SNE reg not equal", 0x9120, 7, 8, AdvanceSkip},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.word, func(t *testing.T, c *CPU, i Instruction) {
			c.m.V[1], c.m.V[2] = tt.v1, tt.v2
			adv, err := c.Execute(i)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, adv)
		})
	}
}

func TestInstruction_SkipKey(t *testing.T) {
	testInstruction(t, "SKP pressed", 0xE59E, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[5] = 0xB
		c.m.Press(keypad.KeyB)
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceSkip, adv)
	})
	testInstruction(t, "SKP not pressed", 0xE59E, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[5] = 0xB
		c.m.Press(keypad.KeyA)
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceNext, adv)
	})
	testInstruction(t, "SKNP pressed", 0xE5A1, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[5] = 0x3
		c.m.Press(keypad.Key3)
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceNext, adv)
	})
	testInstruction(t, "SKNP not pressed", 0xE5A1, func(t *testing.T, c *CPU, i Instruction) {
		c.m.V[5] = 0x3
		adv, _ := c.Execute(i)
		assert.Equal(t, AdvanceSkip, adv)
	})
}

func TestStep_SkipMovesProgramCounter(t *testing.T) {
	// 200: SE V0, 00
	// 202: LD V1, 01 (skipped)
	// 204: LD V2, 02
	c := newCPU(t, 0x3000, 0x6101, 0x6202)
	run(t, c, 2)
	assert.Equal(t, uint8(0), c.m.V[1])
	assert.Equal(t, uint8(2), c.m.V[2])
	assert.Equal(t, uint16(0x206), c.m.PC)
}

func TestStep_StackWraps(t *testing.T) {
	// 200: CALL 200, forever
	c := newCPU(t, 0x2200)
	run(t, c, types.StackSize+1)
	assert.Equal(t, uint8(1), c.m.SP)
	assert.Equal(t, uint16(0x202), c.m.Stack[0])
}
