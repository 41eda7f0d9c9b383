package emulator

// Controller defines the interface contract for an Emulator to
// implement in order for a display driver to be able to control
// it. Every method is safe to call from any goroutine.
type Controller interface {
	// SendCommand sends a command packet to the emulator and waits
	// for its response.
	SendCommand(command CommandPacket) ResponsePacket
	// Speed returns the speed multiplier of the emulator.
	Speed() float64
	// Status returns the status of the emulator.
	Status() Status
}
