// Package b64 provides the base64 encode/decode module using the standard
// alphabet in either padded or raw form.
package b64

import (
	"encoding/base64"
	"fmt"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

type Module struct {
	encode  bool
	padding bool
}

// New builds a base64 module. encode selects direction; padding selects the
// padded standard alphabet ('=' to a multiple of 4) versus the raw variant.
func New(encode, padding bool) *Module {
	return &Module{encode: encode, padding: padding}
}

func (m *Module) Name() string { return "base64" }

func (m *Module) Process(data []byte) ([]byte, error) {
	enc := base64.StdEncoding
	if !m.padding {
		enc = base64.RawStdEncoding
	}
	if m.encode {
		out := make([]byte, enc.EncodedLen(len(data)))
		enc.Encode(out, data)
		return out, nil
	}
	out := make([]byte, enc.DecodedLen(len(data)))
	n, err := enc.Decode(out, data)
	if err != nil {
		return nil, fmt.Errorf("%w: base64 decode: %v", processor.ErrModule, err)
	}
	return out[:n], nil
}
