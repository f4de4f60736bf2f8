package processor

// ByteProcessor is a single transformation stage in the module chain.
type ByteProcessor interface {
	// Name returns a stable identifier used for logging and ordering.
	Name() string
	// Process transforms input bytes into output bytes. It must be a pure
	// function of its input and construction-time parameters, must accept
	// any input including the empty buffer, and fails only when the input
	// is malformed for the module's contract.
	Process(data []byte) ([]byte, error)
}
