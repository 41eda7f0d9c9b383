// Command chip8run runs a ROM without a display for a fixed number of
// frames, then prints the machine registers and writes the display to
// a PNG. It is used to smoke test ROMs.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/thelolagemann/go-chip8/internal/emulator"
	"github.com/thelolagemann/go-chip8/internal/machine"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/log"
	"github.com/thelolagemann/go-chip8/pkg/utils"
)

func main() {
	frames := flag.Int("frames", 600, "Number of 60Hz frames to run")
	ipf := flag.Int("ipf", emulator.DefaultInstructionsPerFrame, "Instructions executed per frame")
	seed := flag.Int64("seed", 1, "Seed for the random number generator")
	out := flag.String("out", "", "Write the final display to this PNG file")
	scale := flag.Int("scale", display.PixelScale, "Size of a display pixel in the PNG")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	flag.Parse()

	logger := log.New(log.WithDebug(*debug))
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: chip8run [flags] rom")
		flag.PrintDefaults()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal(err.Error())
	}

	random := rand.New(rand.NewSource(*seed))
	opts := []emulator.Opt{
		emulator.WithLogger(logger),
		emulator.InstructionsPerFrame(*ipf),
		emulator.WithRandom(func() uint8 { return uint8(random.Intn(256)) }),
	}
	if *debug {
		opts = append(opts, emulator.Debug())
	}

	emu, err := emulator.New(rom, opts...)
	if err != nil {
		logger.Fatal(err.Error())
	}

	ran, runErr := run(emu, *frames)
	printMachine(os.Stdout, emu.Machine, ran, emu.CPU.Executed)

	if *out != "" {
		img := utils.ScaleImage(display.DefaultPalette.Image(emu.Machine.Display.Frame()), *scale)
		if err := utils.WriteImage(*out, img); err != nil {
			logger.Fatal(err.Error())
		}
	}

	if runErr != nil {
		logger.Fatal(runErr.Error())
	}
}

// run emulates up to n frames, stopping at the first fatal error. It
// returns the number of frames completed.
func run(emu *emulator.Emulator, n int) (int, error) {
	for i := 0; i < n; i++ {
		if err := emu.Frame(); err != nil {
			return i, err
		}
	}
	return n, nil
}

func printMachine(w io.Writer, m *machine.State, frames int, executed uint64) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "frames\t%d\tinstructions\t%d\n", frames, executed)
	fmt.Fprintf(tw, "PC\t%03X\tI\t%03X\n", m.PC, m.I)
	fmt.Fprintf(tw, "DT\t%02X\tST\t%02X\n", m.DelayTimer, m.SoundTimer)
	fmt.Fprintf(tw, "SP\t%X\tstack\t%03X\n", m.SP, m.Stack)
	for i := 0; i < len(m.V); i += 4 {
		fmt.Fprintf(tw, "V%X\t%02X\tV%X\t%02X\tV%X\t%02X\tV%X\t%02X\n",
			i, m.V[i], i+1, m.V[i+1], i+2, m.V[i+2], i+3, m.V[i+3])
	}
	tw.Flush()
}
