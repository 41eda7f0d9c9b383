// Package web provides a display driver that streams the display to
// browsers over a websocket, and accepts keypad input from them.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/display/event"
)

var (
	addr             string
	compression      bool
	compressionLevel int
	cacheSize        int
)

func init() {
	display.Install("web", &Driver{}, []display.DriverOption{
		{Name: "addr", Default: ":8090", Value: &addr, Type: "string", Description: "address to serve the websocket on"},
		{Name: "compression", Default: false, Value: &compression, Type: "bool", Description: "brotli compress frames"},
		{Name: "compression-level", Default: 7, Value: &compressionLevel, Type: "int", Description: "brotli quality, 0-11"},
		{Name: "cache-size", Default: 64, Value: &cacheSize, Type: "int", Description: "number of frames clients keep cached"},
	})
}

type Driver struct {
	emu    display.Emulator
	hub    *hub
	server *http.Server
	mu     sync.Mutex
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

func (d *Driver) Start(frames <-chan types.Frame, events <-chan event.Event, pressed, released chan<- keypad.Key) error {
	enc := newEncoder(max(cacheSize, 1))
	enc.configure(compression, compressionLevel, true)

	h := newHub(d.emu, pressed, released, enc, display.Logger)
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serveHTTP)
	server := &http.Server{Addr: addr, Handler: mux}

	d.mu.Lock()
	d.hub, d.server = h, server
	d.mu.Unlock()

	// web server
	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	go h.run()
	display.Logger.Infof("web: serving %s on %s", d.emu.Title(), addr)

	for {
		select {
		case f := <-frames:
			h.frame(f)
		case e := <-events:
			switch e.Type {
			case event.Quit:
				h.publish([]byte{Closing})
				return d.Stop()
			case event.Title:
				h.setTitle(e.Data.(string))
			case event.Sound:
				h.setSound(e.Data.(bool))
			case event.Error:
				// the emulator has stopped, show clients why and close
				display.Logger.Errorf("web: emulator error: %v", e.Data)
				h.publish(h.status())
				h.publish([]byte{Closing})
				return d.Stop()
			}
		case err := <-serveErr:
			return multierror.Append(fmt.Errorf("web: %w", err), d.Stop()).ErrorOrNil()
		}
	}
}

func (d *Driver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var result error
	if d.hub != nil {
		d.hub.stop()
		d.hub = nil
	}
	if d.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := d.server.Shutdown(ctx); err != nil {
			result = multierror.Append(result, fmt.Errorf("web: shutting down server: %w", err))
		}
		d.server = nil
	}

	return result
}
