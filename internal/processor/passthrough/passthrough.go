package passthrough

// Module copies its input unchanged. It is always first in the chain.
type Module struct{}

func New() Module { return Module{} }

func (Module) Name() string { return "passthrough" }

// Process returns an exact copy of data; it never fails.
func (Module) Process(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
