package protocol

// WebSocket event names pushed from server to client.
const (
	EventChat     = "chat"
	EventShutdown = "shutdown"
)

// Chat event subtypes (in payload.type)
const (
	ChatEventClear = "clear"
)
