package protocol

// Protocol error codes.
const (
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrUnauthorized      = "UNAUTHORIZED"
	ErrResourceExhausted = "RESOURCE_EXHAUSTED"
)
