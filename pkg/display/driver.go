package display

import (
	"flag"
	"fmt"
	"sort"
	"strconv"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
	"github.com/thelolagemann/go-chip8/pkg/log"
)

// Logger is used by drivers to report errors that do not stop them.
var Logger = log.NewNullLogger()

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Initialize initializes the display driver by attaching it to
	// the emulator that is using it.
	Initialize(emu Emulator)
	// Start the display driver. It blocks until the driver is
	// closed, either by the user or by a Quit event.
	Start(frames <-chan types.Frame, events <-chan event.Event, pressed, released chan<- keypad.Key) error
	// Stop the display driver.
	Stop() error
}

// Emulator is the interface that wraps the basic methods for an
// emulator to implement in order for the driver to be able to
// interact with it. This is used to allow the driver to
// control the emulator. The emulator is passed to the driver
// during initialization.
type Emulator interface {
	emulator.Controller
	// Title returns the name of the running ROM.
	Title() string
}

var (
	Pause     = emulator.CommandPacket{Command: emulator.CommandPause}
	Resume    = emulator.CommandPacket{Command: emulator.CommandResume}
	Reset     = emulator.CommandPacket{Command: emulator.CommandReset}
	Close     = emulator.CommandPacket{Command: emulator.CommandClose}
	SaveState = emulator.CommandPacket{Command: emulator.CommandSaveState}
	LoadState = emulator.CommandPacket{Command: emulator.CommandLoadState}
)

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. This
// variable is exported so that it can be used by the main
// program to determine which drivers can be used. Drivers should
// call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed. "auto" selects the
// preferred driver: sdl when installed, otherwise the first one.
func GetDriver(name string) Driver {
	if len(InstalledDrivers) == 0 {
		return nil
	}
	if name == "auto" {
		name = "sdl"
		if d := GetDriver(name); d != nil {
			return d
		}
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// DriverNames returns the names of the installed drivers.
func DriverNames() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, d := range InstalledDrivers {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver
// options and registers them with the flag package.
func RegisterFlags() {
	registerFlags(flag.CommandLine)
}

func registerFlags(fs *flag.FlagSet) {
	optionCounts := make(map[string]int)
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string]string)

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			// track how many times an option is used
			optionCounts[opt.Name]++
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = driver.Name
		}
	}

	for o, count := range optionCounts {
		opt := opts[o][0]

		// shared options are merged into a single flag that sets them all
		if count > 1 {
			multi := &multiValue{defaultValue: opt.Default}
			for _, mOpt := range opts[o] {
				multi.values = append(multi.values, mOpt.Value)
				setDefault(mOpt)
			}
			fs.Var(multi, o, opt.Description)
			continue
		}

		// this option is unique and should be prefixed
		optName := fmt.Sprintf("%s-%s", prefixes[o], opt.Name)
		switch opt.Type {
		case "string":
			fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
		case "bool":
			fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
		case "float":
			fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
		case "int":
			fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
		}
	}
}

// setDefault stores the default of opt in its value.
func setDefault(opt DriverOption) {
	switch v := opt.Value.(type) {
	case *string:
		*v = opt.Default.(string)
	case *bool:
		*v = opt.Default.(bool)
	case *float64:
		*v = opt.Default.(float64)
	case *int:
		*v = opt.Default.(int)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	if m == nil || m.defaultValue == nil {
		return ""
	}
	return fmt.Sprint(m.defaultValue)
}

func (m *multiValue) Set(value string) error {
	// update all the pointers with the provided value
	for _, ptr := range m.values {
		switch v := ptr.(type) {
		case *string:
			*v = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*v = b
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*v = f
		case *int:
			i, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*v = i
		default:
			return fmt.Errorf("unknown type: %T", ptr)
		}
	}

	return nil
}

func (m *multiValue) IsBoolFlag() bool {
	_, isBool := m.defaultValue.(bool)
	return isBool
}

// SendKey delivers a key event to the emulator without blocking the
// driver's event loop. Events are dropped when the emulator is not
// keeping up.
func SendKey(ch chan<- keypad.Key, k keypad.Key) {
	select {
	case ch <- k:
	default:
		Logger.Debugf("dropped key event %s", keypad.Name(k))
	}
}
