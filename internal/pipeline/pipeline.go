// Package pipeline runs the single-shot hex-in, hex-out processing flow:
// receive, decode, bound, transform, bound, encode, deliver.
package pipeline

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/tldr-it-stepankutaj/byteproc/internal/app"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor/registry"
	"github.com/tldr-it-stepankutaj/byteproc/internal/transport"
)

// Run processes exactly one message. Any failure aborts the run before
// anything is sent: there is no partial output.
func Run(ctx app.Context, src transport.Source, sink transport.Sink) error {
	raw, err := src.Receive()
	if err != nil {
		return err
	}
	ctx.Log.Info("received hex input", zap.Int("chars", len(raw)))

	data, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("%w: input: %v", processor.ErrHexDecode, err)
	}

	// Size is bounded on decoded bytes, before any module runs.
	if err := checkSize(ctx.Config.MaxStreamSize, len(data)); err != nil {
		return err
	}

	reg, err := registry.New(ctx.Config.ProcessorOptions(), ctx.Log)
	if err != nil {
		return err
	}
	defer reg.Close()

	out, err := reg.ProcessAll(data)
	if err != nil {
		return err
	}

	// Modules may expand data (base64 encode); re-check before delivery.
	if err := checkSize(ctx.Config.MaxStreamSize, len(out)); err != nil {
		return err
	}

	encoded := hex.EncodeToString(out)
	if err := sink.Send(encoded); err != nil {
		return err
	}
	ctx.Log.Info("sent hex output", zap.Int("chars", len(encoded)))
	return nil
}

func checkSize(limit, actual int) error {
	if actual > limit {
		return &processor.SizeError{Limit: limit, Actual: actual}
	}
	return nil
}
