//go:build !test

package glfw

import (
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
)

const (
	aspectRatio = float32(types.ScreenWidth) / float32(types.ScreenHeight)
)

func init() {
	// GLFW: this is needed to arrange for main to run on main thread
	runtime.LockOSThread()

	// register display driver
	driver := &glfwDriver{}
	display.Install("glfw", driver, []display.DriverOption{
		{
			Name:        "fullscreen",
			Default:     false,
			Value:       &driver.fullscreen,
			Type:        "bool",
			Description: "Run in fullscreen mode",
		},
		{
			Name:        "scale",
			Default:     float64(display.PixelScale),
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
		{
			Name:        "maintain-aspect-ratio",
			Default:     true,
			Value:       &driver.maintainAspectRatio,
			Type:        "bool",
			Description: "Force the window to maintain the correct aspect ratio",
		},
	})
}

var hotkeys = map[glfw.Key]display.Hotkey{
	glfw.KeyEscape:    display.HotkeyQuit,
	glfw.KeyP:         display.HotkeyPause,
	glfw.KeyPause:     display.HotkeyPause,
	glfw.KeyBackspace: display.HotkeyReset,
	glfw.KeyF5:        display.HotkeySaveState,
	glfw.KeyF9:        display.HotkeyLoadState,
	glfw.KeyF12:       display.HotkeyScreenshot,
	glfw.KeyEqual:     display.HotkeyFaster,
	glfw.KeyMinus:     display.HotkeySlower,
}

// glfwDriver implements a barebones display driver using GLFW
// and the OpenGL API.
type glfwDriver struct {
	fullscreen          bool
	scale               float64
	maintainAspectRatio bool

	emu display.Emulator
	mon *glfw.Monitor

	windowSettings struct {
		width      int
		height     int
		xPos, yPos int
	}
}

func (g *glfwDriver) Initialize(e display.Emulator) {
	g.emu = e
}

// Start starts the display driver.
func (g *glfwDriver) Start(frames <-chan types.Frame, evts <-chan event.Event, pressed, released chan<- keypad.Key) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	g.mon = glfw.GetPrimaryMonitor()

	// create window
	width, height := int(types.ScreenWidth*g.scale), int(types.ScreenHeight*g.scale)
	window, err := glfw.CreateWindow(width, height, g.emu.Title(), nil, nil)
	if err != nil {
		return err
	}

	if g.maintainAspectRatio {
		window.SetAspectRatio(types.ScreenWidth, types.ScreenHeight)
	}
	// fullscreen
	if g.fullscreen {
		bestMode := g.bestMode()
		window.SetMonitor(g.mon, 0, 0, bestMode.Width, bestMode.Height, bestMode.RefreshRate)
	}

	window.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return err
	}

	// initialize window settings
	g.windowSettings.width, g.windowSettings.height = window.GetSize()
	g.windowSettings.xPos, g.windowSettings.yPos = window.GetPos()

	var texture uint32
	{
		gl.GenTextures(1, &texture)

		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

		gl.BindImageTexture(0, texture, 0, false, 0, gl.WRITE_ONLY, gl.RGB8)
	}

	var last types.Frame
	quit := false

	// setup event handling
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		// printable keys report their upper case character
		if k, ok := keypad.Lookup(rune(key)); ok {
			switch action {
			case glfw.Press:
				display.SendKey(pressed, k)
			case glfw.Release:
				display.SendKey(released, k)
			}
			return
		}

		if action != glfw.Press {
			return
		}
		if key == glfw.KeyF11 {
			g.toggleFullscreen(window)
			return
		}
		if hk, ok := hotkeys[key]; ok && display.HandleHotkey(g.emu, hk, last) {
			quit = true
		}
	})

	var fb uint32
	{
		gl.GenFramebuffers(1, &fb)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)

		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	}

	// handle resizing
	targetWidth, targetHeight := int32(width), int32(height)
	var offsetX, offsetY int32
	window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		if float32(w)/float32(h) > aspectRatio {
			targetWidth = int32(float32(h) * aspectRatio)
			targetHeight = int32(h)
		} else {
			targetWidth = int32(w)
			targetHeight = int32(float32(w) / aspectRatio)
		}

		offsetX = (int32(w) - targetWidth) / 2
		offsetY = (int32(h) - targetHeight) / 2
	})

	draw := func(f types.Frame) {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, types.ScreenWidth, types.ScreenHeight, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(display.CurrentPalette.RGB(f)))

		gl.BlitFramebuffer(0, 0, types.ScreenWidth, types.ScreenHeight, offsetX, offsetY+targetHeight, offsetX+targetWidth, offsetY, gl.COLOR_BUFFER_BIT, gl.NEAREST)

		window.SwapBuffers()
	}
	draw(last)

	pollTicker := time.NewTicker(time.Millisecond * 10) // to handle input when no frames arrive
	defer pollTicker.Stop()

	// draw loop
	for {
		select {
		case f := <-frames:
			last = f
			draw(f)
		case e := <-evts:
			switch e.Type {
			case event.Quit:
				return g.Stop()
			case event.Title:
				window.SetTitle(e.Data.(string))
			case event.Error:
				display.Logger.Errorf("glfw: emulator error: %v", e.Data)
			}
		case <-pollTicker.C:
			glfw.PollEvents()
			if quit || window.ShouldClose() {
				// a running emulator answers with a Quit event
				if resp := g.emu.SendCommand(display.Close); resp.Error != nil {
					return g.Stop()
				}
				quit = false
			}
		}
	}
}

func (g *glfwDriver) toggleFullscreen(window *glfw.Window) {
	if g.fullscreen {
		window.SetMonitor(nil, g.windowSettings.xPos, g.windowSettings.yPos, g.windowSettings.width, g.windowSettings.height, 60)
	} else {
		// store the current window settings
		g.windowSettings.width, g.windowSettings.height = window.GetSize()
		g.windowSettings.xPos, g.windowSettings.yPos = window.GetPos()

		bestMode := g.bestMode()
		window.SetMonitor(g.mon, 0, 0, bestMode.Width, bestMode.Height, bestMode.RefreshRate)
	}

	g.fullscreen = !g.fullscreen
}

// Stop stops the display driver.
func (g *glfwDriver) Stop() error {
	glfw.Terminate()

	return nil
}

// bestMode returns the best video mode for the current monitor
// by choosing the highest resolution that is the closest match to
// the native aspect ratio of the monitor. This should provide a
// reasonable default for most monitors.
func (g *glfwDriver) bestMode() *glfw.VidMode {
	sizeX, sizeY := g.mon.GetPhysicalSize()
	monAspectRatio := float32(sizeX) / float32(sizeY)
	closestMatch := float32(0)

	best := g.mon.GetVideoMode()
	for _, vm := range g.mon.GetVideoModes() {
		// skip modes that aren't 60FPS
		if vm.RefreshRate != 60 {
			continue
		}

		// skip modes that have a worse aspect ratio match
		vmAspectRatio := float32(vm.Width) / float32(vm.Height)
		if monAspectRatio-vmAspectRatio > closestMatch {
			continue
		}

		closestMatch = vmAspectRatio - monAspectRatio
		best = vm
	}

	return best
}
