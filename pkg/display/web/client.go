package web

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thelolagemann/go-chip8/pkg/display"
	"github.com/thelolagemann/go-chip8/pkg/emulator"
)

const writeWait = 5 * time.Second

type Client struct {
	hub  *hub
	conn *websocket.Conn
	Send chan []byte
	ID   uint8

	RemoteAddr string
	UserAgent  string

	latency atomic.Int64 // smoothed round trip in milliseconds
}

// ReadPump handles messages from the client until the connection
// is closed.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case KeyInput:
			if len(message) < 3 {
				continue
			}
			c.hub.key(message[1], message[2] == 1)
		case Control:
			if len(message) < 2 {
				continue
			}
			c.control(message[1])
		case Setting:
			if len(message) < 3 {
				continue
			}
			c.setting(message[1], message[2])
		case Close:
			return
		}
	}
}

func (c *Client) control(action ControlAction) {
	var packet emulator.CommandPacket
	switch action {
	case PausePlay:
		packet = display.Pause
		if c.hub.emu.Status().IsPaused() {
			packet = display.Resume
		}
	case Reset:
		packet = display.Reset
	case SaveState:
		packet = display.SaveState
	case LoadState:
		packet = display.LoadState
	default:
		return
	}

	if resp := c.hub.emu.SendCommand(packet); resp.Error != nil {
		c.hub.log.Errorf("web: client %d: %s: %v", c.ID, packet.Command, resp.Error)
	}
	c.hub.publish(c.hub.status())
}

func (c *Client) setting(id SettingID, value uint8) {
	compression, level, caching := c.hub.encoder.settings()
	switch id {
	case Compression:
		compression = value == 1
	case CompressionLevel:
		level = int(min(value, 11))
	case FrameCaching:
		caching = value == 1
	default:
		return
	}

	c.hub.encoder.configure(compression, level, caching)
	c.hub.publish(c.hub.info())
}

// WritePump writes queued messages to the client until the hub
// closes Send or a write fails.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))

		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		// update average latency
		if rtt, err := roundTrip(c.conn.UnderlyingConn()); err == nil {
			ms := rtt.Milliseconds()
			c.latency.Store((c.latency.Load()*9 + ms) / 10)
		}
	}

	// hub closed the connection
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
