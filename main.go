package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/go-chip8/internal/emulator"
	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/audio"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
	_ "github.com/thelolagemann/go-chip8/pkg/display/fyne"
	_ "github.com/thelolagemann/go-chip8/pkg/display/glfw"
	_ "github.com/thelolagemann/go-chip8/pkg/display/sdl"
	_ "github.com/thelolagemann/go-chip8/pkg/display/term"
	_ "github.com/thelolagemann/go-chip8/pkg/display/web"
	"github.com/thelolagemann/go-chip8/pkg/log"
	"github.com/thelolagemann/go-chip8/pkg/perf"
	"github.com/thelolagemann/go-chip8/pkg/utils"
)

var (
	_ display.Emulator = &emulator.Emulator{}
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load, may also be given as the first argument")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, "+strings.Join(display.DriverNames(), ", "))
	ipf := flag.Int("ipf", emulator.DefaultInstructionsPerFrame, "Instructions executed per 60Hz frame")
	speed := flag.Float64("speed", 1, "The speed to run the emulator at")
	fg := flag.String("fg", "#FFFFFF", "Colour of lit pixels")
	bg := flag.String("bg", "#000000", "Colour of unlit pixels")
	mute := flag.Bool("mute", false, "Disable the buzzer")
	tone := flag.Int("tone", audio.DefaultTone, "Pitch of the buzzer in Hz")
	state := flag.String("state", "", "The state file to save to and load from (default derived from the ROM)")
	resume := flag.Bool("resume", false, "Restore the state file on start")
	seed := flag.Int64("seed", 0, "Seed for the random number generator (default random)")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	pprofAddr := flag.String("pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	frameTimePlot := flag.String("frametime-plot", "", "Write a plot of frame times to this file on exit")

	display.RegisterFlags()
	flag.Parse()

	logger := log.New(log.WithDebug(*debug))
	display.Logger = logger

	if len(display.InstalledDrivers) == 0 {
		logger.Fatal("No display drivers installed. Please compile with at least one display driver")
	}

	// start pprof
	if *pprofAddr != "" {
		go func() {
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Errorf("pprof: %v", err)
			}
		}()
	}

	palette, err := display.NewPalette(*fg, *bg)
	if err != nil {
		logger.Fatal(err.Error())
	}
	display.CurrentPalette = palette

	// determine the rom to load
	if *romFile == "" {
		*romFile = flag.Arg(0)
	}
	if *romFile == "" {
		if *romFile, err = utils.AskForROM("."); err != nil {
			logger.Fatal(fmt.Sprintf("no ROM selected: %v", err))
		}
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(fmt.Sprintf("unable to load ROM: %v", err))
	}

	opts := []emulator.Opt{
		emulator.WithLogger(logger),
		emulator.WithTitle(strings.TrimSuffix(filepath.Base(*romFile), filepath.Ext(*romFile))),
		emulator.InstructionsPerFrame(*ipf),
		emulator.Speed(*speed),
	}
	if *debug {
		opts = append(opts, emulator.Debug())
	}
	if *seed != 0 {
		random := rand.New(rand.NewSource(*seed))
		opts = append(opts, emulator.WithRandom(func() uint8 { return uint8(random.Intn(256)) }))
	}
	if *state != "" {
		opts = append(opts, emulator.WithStateFile(*state))
	}
	if *resume {
		opts = append(opts, emulator.Resume())
	}

	var recorder *perf.Recorder
	if *frameTimePlot != "" {
		recorder = perf.NewRecorder(perf.DefaultCapacity)
		opts = append(opts, emulator.WithRecorder(recorder))
	}

	var device *audio.Device
	if !*mute {
		if device, err = audio.OpenAudio(*tone); err != nil {
			logger.Errorf("unable to open audio device %s", err)
		} else {
			opts = append(opts, emulator.WithBeeper(device))
		}
	}

	emu, err := emulator.New(rom, opts...)
	if err != nil {
		logger.Fatal(err.Error())
	}

	driver := display.GetDriver(*displayDriver)

	// check to make sure the driver is valid
	if driver == nil {
		logger.Fatal(fmt.Sprintf("invalid display driver %q, installed drivers are %s", *displayDriver, strings.Join(display.DriverNames(), ", ")))
	}

	// attach emulator to driver
	driver.Initialize(emu)

	// create various channels
	frames := make(chan types.Frame, 1)
	events := make(chan event.Event, 60)
	pressed := make(chan keypad.Key, 16)
	released := make(chan keypad.Key, 16)

	// start emulator in a goroutine
	emuErr := make(chan error, 1)
	go func() {
		emuErr <- emu.Start(frames, events, pressed, released)
	}()

	var result error
	if err := driver.Start(frames, events, pressed, released); err != nil {
		result = multierror.Append(result, fmt.Errorf("display: %w", err))
	}

	// the driver may have stopped on its own, make sure the emulator follows
	emu.SendCommand(display.Close)
	select {
	case err := <-emuErr:
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("emulator: %w", err))
		}
	case <-time.After(time.Second):
		result = multierror.Append(result, errors.New("emulator did not stop"))
	}

	if device != nil {
		if err := device.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("audio: %w", err))
		}
	}

	if recorder != nil {
		logger.Infof("%d frames, average frame time %s, worst %s", recorder.Count(), recorder.Average(), recorder.Worst())
		if err := recorder.Save(*frameTimePlot); err != nil {
			result = multierror.Append(result, fmt.Errorf("frame time plot: %w", err))
		}
	}

	if result != nil {
		logger.Fatal(result.Error())
	}
}
