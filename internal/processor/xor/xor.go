package xor

import (
	"encoding/hex"
	"fmt"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

// Module XORs its input against a cyclically repeated secret key. Applying
// the same module twice restores the original buffer.
type Module struct {
	key *keyBuffer
}

// keyBuffer scopes the sensitive key material so that Close can overwrite
// it before the memory is reclaimed.
type keyBuffer struct {
	b []byte
}

func (k *keyBuffer) zero() {
	for i := range k.b {
		k.b[i] = 0
	}
	k.b = k.b[:0]
}

// New builds an XOR module from a hex-encoded key. The pad byte is accepted
// for configuration compatibility but the transform never consults it: the
// key is always cycled across the input.
func New(hexKey string, pad byte) (*Module, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: xor_key: %v", processor.ErrHexDecode, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: xor_key cannot be empty", processor.ErrInvalidConfiguration)
	}
	_ = pad
	return &Module{key: &keyBuffer{b: raw}}, nil
}

func (m *Module) Name() string { return "xor" }

// Process XORs every input byte against key[i mod len(key)].
func (m *Module) Process(data []byte) ([]byte, error) {
	key := m.key.b
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// Close overwrites the key material with zeros. The registry calls it on
// every exit path; the module must not be used afterwards.
func (m *Module) Close() error {
	m.key.zero()
	return nil
}
