package processor

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Use errors.Is() to
// classify failures; every failure aborts the remaining chain and is
// surfaced verbatim to the caller.
var (
	// ErrInvalidConfiguration indicates a module or the registry cannot be
	// constructed from the given parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrHexDecode indicates a key or input string is not valid hexadecimal.
	ErrHexDecode = errors.New("hex decode error")

	// ErrMaxSizeExceeded indicates a buffer exceeds the configured stream
	// size bound. Carried by SizeError.
	ErrMaxSizeExceeded = errors.New("stream too large")

	// ErrModule indicates a module-specific transform failure, such as
	// invalid Base64 text on decode.
	ErrModule = errors.New("module processing error")

	// ErrTransport indicates a failure fetching or delivering the message.
	ErrTransport = errors.New("transport error")
)

// SizeError reports a buffer that exceeds the configured stream size bound.
type SizeError struct {
	Limit  int // configured bound in bytes
	Actual int // observed buffer length in bytes
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("stream too large: max %d bytes, got %d", e.Limit, e.Actual)
}

func (e *SizeError) Unwrap() error {
	return ErrMaxSizeExceeded
}
