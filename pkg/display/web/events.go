package web

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	// Frame carries a cache index (uint16 LE) followed by a packed,
	// optionally compressed frame.
	Frame Type = iota
	// FrameCache carries the cache index of a frame the client has
	// already received.
	FrameCache
	// FrameSync carries the current frame, uncompressed, to a newly
	// connected client.
	FrameSync
	// ClientInfo carries the hub settings byte and compression level.
	ClientInfo
	// ServerInfo carries the ID and latency (uint16 LE, ms) of each client.
	ServerInfo
	// Title carries the window title.
	Title
	// Sound carries 1 while the beeper is active, 0 otherwise.
	Sound
	// Status carries the emulator status.
	Status
	// Closing tells the client the emulator has stopped.
	Closing Type = 255
)

// Input is the first byte of every message received from a client.
type Input = uint8

const (
	// KeyInput carries a keypad key and 1 for pressed, 0 for released.
	KeyInput Input = iota
	// Control carries a Control value.
	Control
	// Setting carries a Setting and its value.
	Setting
	// Close is sent by a client that is disconnecting.
	Close Input = 255
)

// ControlAction is an emulator command a client may request.
type ControlAction = uint8

const (
	PausePlay ControlAction = iota
	Reset
	SaveState
	LoadState
)

// SettingID identifies a hub setting a client may change.
type SettingID = uint8

const (
	Compression SettingID = iota
	CompressionLevel
	FrameCaching
)
