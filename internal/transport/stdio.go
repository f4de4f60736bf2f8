package transport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

// ReaderSource reads the whole stream as one message, trimming surrounding
// whitespace. The standard-input transport is a ReaderSource over os.Stdin.
type ReaderSource struct {
	r io.Reader
}

func NewStdinSource() *ReaderSource { return &ReaderSource{r: os.Stdin} }

func NewReaderSource(r io.Reader) *ReaderSource { return &ReaderSource{r: r} }

func (s *ReaderSource) Receive() (string, error) {
	b, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("%w: read input: %v", processor.ErrTransport, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *ReaderSource) Close() error { return nil }

// WriterSink writes one message followed by a newline. The standard-output
// transport is a WriterSink over os.Stdout.
type WriterSink struct {
	w io.Writer
}

func NewStdoutSink() *WriterSink { return &WriterSink{w: os.Stdout} }

func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) Send(hexText string) error {
	if _, err := fmt.Fprintln(s.w, hexText); err != nil {
		return fmt.Errorf("%w: write output: %v", processor.ErrTransport, err)
	}
	return nil
}

func (s *WriterSink) Close() error { return nil }
