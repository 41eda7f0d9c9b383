//go:build !linux

package web

import (
	"errors"
	"net"
	"time"
)

func roundTrip(net.Conn) (time.Duration, error) {
	return 0, errors.New("round trip time unavailable on this platform")
}
