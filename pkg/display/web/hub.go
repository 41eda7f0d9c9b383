package web

import (
	"encoding/binary"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thelolagemann/go-chip8/internal/keypad"
	"github.com/thelolagemann/go-chip8/internal/types"
	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/log"
)

var errNotTCP = errors.New("not a TCP connection")

// hub fans frames and events out to every connected client, and
// feeds their key presses to the emulator.
type hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client

	emu               display.Emulator
	pressed, released chan<- keypad.Key
	encoder           *encoder
	log               log.Logger

	// guarded by mu
	current   types.Frame
	title     string
	sound     bool
	currentID uint8
	mu        sync.Mutex

	done chan struct{}
}

func newHub(emu display.Emulator, pressed, released chan<- keypad.Key, enc *encoder, logger log.Logger) *hub {
	return &hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		emu:        emu,
		pressed:    pressed,
		released:   released,
		encoder:    enc,
		log:        logger,
		done:       make(chan struct{}),
	}
}

// run owns the set of clients until the hub is stopped.
func (w *hub) run() {
	// periodic info updates
	t := time.NewTicker(time.Second)
	defer t.Stop()

	defer func() {
		for c := range w.clients {
			close(c.Send)
			delete(w.clients, c)
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case c := <-w.register:
			w.clients[c] = true
			w.log.Infof("web: client %d connected from %s (%s)", c.ID, c.RemoteAddr, c.UserAgent)
		case c := <-w.unregister:
			// is this client still registered
			if _, ok := w.clients[c]; ok {
				delete(w.clients, c)
				close(c.Send)
				w.log.Infof("web: client %d disconnected", c.ID)
			}
		case msg := <-w.broadcast:
			w.send(msg)
		case <-t.C:
			// build information
			data := []byte{ServerInfo}
			for c := range w.clients {
				latencyBuf := make([]byte, 2)
				binary.LittleEndian.PutUint16(latencyBuf, uint16(c.latency.Load()))
				data = append(data, c.ID)
				data = append(data, latencyBuf...)
			}
			w.send(data)
		}
	}
}

// send delivers msg to every client, dropping those that cannot keep up.
func (w *hub) send(msg []byte) {
	for c := range w.clients {
		select {
		case c.Send <- msg:
		default:
			close(c.Send)
			delete(w.clients, c)
			w.log.Errorf("web: dropped client %d, send buffer full", c.ID)
		}
	}
}

// publish queues msg for broadcast.
func (w *hub) publish(msg []byte) {
	select {
	case w.broadcast <- msg:
	case <-w.done:
	}
}

func (w *hub) stop() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
}

// frame records f as the current frame and broadcasts it.
func (w *hub) frame(f types.Frame) {
	w.mu.Lock()
	w.current = f
	w.mu.Unlock()

	msg, err := w.encoder.encode(f)
	if err != nil {
		w.log.Errorf("web: encoding frame: %v", err)
		return
	}
	w.publish(msg)
}

func (w *hub) setTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.publish(append([]byte{Title}, title...))
}

func (w *hub) setSound(on bool) {
	w.mu.Lock()
	w.sound = on
	w.mu.Unlock()
	w.publish([]byte{Sound, boolByte(on)})
}

// info returns a byte of information containing the various
// hub settings, followed by the compression level. The byte is
// constructed as follows:
//
//	Bit 0: Compression enabled
//	Bit 1: Frame caching enabled
func (w *hub) info() []byte {
	compression, level, caching := w.encoder.settings()
	var info uint8
	if compression {
		info |= 1 << 0
	}
	if caching {
		info |= 1 << 1
	}
	return []byte{ClientInfo, info, uint8(level)}
}

func (w *hub) status() []byte {
	return []byte{Status, uint8(w.emu.Status())}
}

// key forwards a key event from a client to the emulator.
func (w *hub) key(k keypad.Key, pressed bool) {
	ch := w.released
	if pressed {
		ch = w.pressed
	}
	select {
	case ch <- k & 0xF:
	case <-w.done:
	}
}

// serveHTTP upgrades the request to a websocket and attaches a new
// client to the hub.
func (w *hub) serveHTTP(wr http.ResponseWriter, r *http.Request) {
	wr.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(wr, r, nil)
	if err != nil {
		w.log.Errorf("web: upgrading connection from %s: %v", r.RemoteAddr, err)
		return
	}

	c := w.newClient(conn, r)

	// synchronize the connecting client before it receives broadcasts
	w.mu.Lock()
	c.Send <- w.info()
	c.Send <- append([]byte{FrameSync}, w.current.Pack()...)
	c.Send <- append([]byte{Title}, w.title...)
	c.Send <- []byte{Sound, boolByte(w.sound)}
	w.mu.Unlock()
	c.Send <- w.status()

	select {
	case w.register <- c:
	case <-w.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// newClient creates a new client for conn.
func (w *hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.currentID++

	return &Client{
		hub:        w,
		conn:       conn,
		Send:       make(chan []byte, 256),
		ID:         w.currentID,
		RemoteAddr: r.RemoteAddr,
		UserAgent:  r.Header.Get("User-Agent"),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 4,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
