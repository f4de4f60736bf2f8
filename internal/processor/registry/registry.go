// Package registry assembles the ordered chain of enabled processing
// modules from resolved configuration.
package registry

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor/b64"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor/passthrough"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor/xor"
)

// Options selects and parameterizes the modules of one chain.
type Options struct {
	XorEnabled    bool
	XorKey        string
	XorPad        byte
	Base64Enabled bool
	Base64Encode  bool
	Base64Padding bool
}

// Registry owns the ordered module chain for one invocation. The chain is
// fixed at construction: passthrough first, then xor if enabled, then
// base64 if enabled. A slice, not a map, so execution order is a structural
// guarantee rather than an accident of hashing.
type Registry struct {
	chain []processor.ByteProcessor
	log   *zap.Logger
}

// New builds the chain from opts. Construction is atomic: if any module
// fails to construct, already-built modules are closed (zeroing any key
// material) and no registry is returned.
func New(opts Options, log *zap.Logger) (*Registry, error) {
	r := &Registry{log: log}
	r.chain = append(r.chain, passthrough.New())

	if opts.XorEnabled {
		m, err := xor.New(opts.XorKey, opts.XorPad)
		if err != nil {
			_ = r.Close()
			return nil, err
		}
		r.chain = append(r.chain, m)
	}

	if opts.Base64Enabled {
		r.chain = append(r.chain, b64.New(opts.Base64Encode, opts.Base64Padding))
	}

	log.Info("module chain assembled", zap.Strings("modules", r.Names()))
	return r, nil
}

// Names returns the module names in execution order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.chain))
	for i, m := range r.chain {
		names[i] = m.Name()
	}
	return names
}

// ProcessAll folds data through each module in chain order, left to right.
// The first failing module aborts the chain; later modules do not run.
func (r *Registry) ProcessAll(data []byte) ([]byte, error) {
	for i, m := range r.chain {
		r.log.Info("running module",
			zap.String("module", m.Name()),
			zap.Int("position", i))
		out, err := m.Process(data)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", m.Name(), err)
		}
		data = out
	}
	return data, nil
}

// Close releases module resources. Modules holding sensitive material zero
// it here; callers must run Close on every exit path.
func (r *Registry) Close() error {
	var first error
	for _, m := range r.chain {
		if c, ok := m.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
