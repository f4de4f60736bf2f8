// Package transport supplies the hex text of one message and delivers the
// hex text of the result. The processing core never touches I/O directly.
package transport

import (
	"context"
	"fmt"

	"github.com/tldr-it-stepankutaj/byteproc/internal/app"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

// Source fetches the raw hex-encoded input for one message.
type Source interface {
	Receive() (string, error)
	Close() error
}

// Sink delivers the hex-encoded result of one message.
type Sink interface {
	Send(hexText string) error
	Close() error
}

// NewSource builds the configured input transport.
func NewSource(ctx context.Context, cfg app.Config) (Source, error) {
	switch cfg.InputType {
	case app.InputStdin:
		return NewStdinSource(), nil
	case app.InputZMQ:
		return NewZMQSource(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown input_type %q",
			processor.ErrInvalidConfiguration, cfg.InputType)
	}
}

// NewSink builds the configured output transport.
func NewSink(ctx context.Context, cfg app.Config) (Sink, error) {
	switch cfg.OutputType {
	case app.OutputStdout:
		return NewStdoutSink(), nil
	case app.OutputZMQ:
		return NewZMQSink(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown output_type %q",
			processor.ErrInvalidConfiguration, cfg.OutputType)
	}
}
