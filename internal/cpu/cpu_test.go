package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/go-chip8/internal/machine"
	"github.com/thelolagemann/go-chip8/internal/types"
)

// assemble converts instruction words into a big-endian program image.
func assemble(words ...uint16) []byte {
	b := make([]byte, 0, len(words)*2)
	for _, w := range words {
		b = append(b, byte(w>>8), byte(w))
	}
	return b
}

// newCPU returns a CPU with the given program loaded and a fixed
// random source.
func newCPU(t *testing.T, words ...uint16) *CPU {
	t.Helper()
	m, err := machine.New(assemble(words...))
	require.NoError(t, err)
	return New(m, WithRandom(func() uint8 { return 0xFF }))
}

// run steps the CPU n times, failing the test on any error.
func run(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, c.Step(), "step %d at 0x%03X", i, c.m.PC)
	}
}

// testInstruction decodes word and executes it once against a fresh
// CPU, after setup has prepared the machine.
func testInstruction(t *testing.T, name string, word uint16, fn func(t *testing.T, c *CPU, i Instruction)) {
	t.Run(name, func(t *testing.T) {
		i, ok := Decode(word)
		require.True(t, ok, "0x%04X should decode", word)
		fn(t, newCPU(t), i)
	})
}

func TestInstructionSet_Complete(t *testing.T) {
	for op := Op(0); op < opCount; op++ {
		if InstructionSet[op].fn == nil {
			t.Errorf("op %d has no handler", op)
		}
		if InstructionSet[op].name == "" {
			t.Errorf("op %d has no name", op)
		}
	}
}

func TestStep_Scenarios(t *testing.T) {
	t.Run("add without carry", func(t *testing.T) {
		c := newCPU(t, 0x6005, 0x6103, 0x8014)
		run(t, c, 3)
		assert.Equal(t, uint8(8), c.m.V[0])
		assert.Equal(t, uint8(0), c.m.V[0xF])
		assert.Equal(t, types.ProgramStart+6, c.m.PC)
	})
	t.Run("subtract with borrow", func(t *testing.T) {
		c := newCPU(t, 0x600A, 0x61FB, 0x8015)
		run(t, c, 3)
		assert.Equal(t, uint8(15), c.m.V[0])
		assert.Equal(t, uint8(0), c.m.V[0xF])
	})
	t.Run("unknown opcode", func(t *testing.T) {
		c := newCPU(t, 0xFFFF, 0x6042)

		err := c.Step()
		var unknown *UnknownOpcodeError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, uint16(0xFFFF), unknown.Word)
		assert.Equal(t, types.ProgramStart, unknown.Address)
		assert.False(t, IsFatal(err))
		assert.Equal(t, types.ProgramStart+2, c.m.PC)

		run(t, c, 1)
		assert.Equal(t, uint8(0x42), c.m.V[0], "execution continues after an unknown opcode")
	})
}

func TestStep_OutOfBounds(t *testing.T) {
	c := newCPU(t)
	c.m.PC = types.MemorySize - 1

	err := c.Step()
	var oob *machine.OutOfBoundsError
	require.True(t, errors.As(err, &oob))
	assert.True(t, IsFatal(err))
	assert.Equal(t, uint16(types.MemorySize-1), c.m.PC, "a failed fetch does not move the program counter")
}

func TestStep_CallReturn(t *testing.T) {
	// 200: CALL 206
	// 202: LD V1, 01
	// 204: JP 204
	// 206: LD V0, 07
	// 208: RET
	c := newCPU(t, 0x2206, 0x6101, 0x1204, 0x6007, 0x00EE)

	run(t, c, 1)
	assert.Equal(t, uint16(0x206), c.m.PC)
	assert.Equal(t, uint8(1), c.m.SP)

	run(t, c, 2)
	assert.Equal(t, uint16(0x202), c.m.PC, "RET returns to the instruction after the call")
	assert.Equal(t, uint8(0), c.m.SP)

	run(t, c, 3)
	assert.Equal(t, uint8(1), c.m.V[1])
	assert.Equal(t, uint16(0x204), c.m.PC)
}

func TestStep_Trace(t *testing.T) {
	c := newCPU(t, 0x00E0)
	c.Debug = true
	run(t, c, 1)
	assert.Equal(t, uint64(1), c.Executed)
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.True(t, IsFatal(&machine.LoadError{Size: 4000}))
	assert.False(t, IsFatal(&UnknownOpcodeError{Word: 0x0123}))
}

func TestExecute_OpOutsideTable(t *testing.T) {
	c := newCPU(t)
	before := *c.m

	adv, err := c.Execute(Instruction{Op: opCount, Word: 0xFFFF})
	var unknown *UnknownOpcodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, uint16(0xFFFF), unknown.Word)
	assert.Equal(t, types.ProgramStart, unknown.Address)
	assert.Equal(t, AdvanceNone, adv)
	assert.Equal(t, before, *c.m)
}

func TestUnknownOpcodeError_Message(t *testing.T) {
	err := &UnknownOpcodeError{Word: 0x5AB1, Address: 0x2F4}
	assert.Equal(t, "unsupported instruction 0x5AB1 (5 A B 1) at 0x2F4", err.Error())
}
