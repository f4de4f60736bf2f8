package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tldr-it-stepankutaj/byteproc/internal/app"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

type fakeSource struct {
	text string
	err  error
}

func (s *fakeSource) Receive() (string, error) { return s.text, s.err }
func (s *fakeSource) Close() error             { return nil }

type fakeSink struct {
	sent []string
}

func (s *fakeSink) Send(hexText string) error { s.sent = append(s.sent, hexText); return nil }
func (s *fakeSink) Close() error              { return nil }

func testContext(cfg app.Config) app.Context {
	return app.Context{Ctx: context.Background(), Config: cfg, Log: zap.NewNop()}
}

func baseConfig() app.Config {
	return app.Config{
		MaxStreamSize: 64 * 1024,
		InputType:     app.InputStdin,
		OutputType:    app.OutputStdout,
	}
}

func TestPassthroughRoundTrip(t *testing.T) {
	sink := &fakeSink{}
	err := Run(testContext(baseConfig()), &fakeSource{text: "deadbeef"}, sink)
	require.NoError(t, err)
	require.Equal(t, []string{"deadbeef"}, sink.sent)
}

func TestXorChain(t *testing.T) {
	cfg := baseConfig()
	cfg.XorEnabled = true
	cfg.XorKey = "abcd1234"

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "00112233"}, sink)
	require.NoError(t, err)
	require.Equal(t, []string{"abdc3007"}, sink.sent)
}

func TestXorBase64Chain(t *testing.T) {
	// 0xff XOR 0xff = 0x00 -> base64 "AA" -> hex of the text "AA".
	cfg := baseConfig()
	cfg.XorEnabled = true
	cfg.XorKey = "ff"
	cfg.Base64Enabled = true
	cfg.Base64Encode = true

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "ff"}, sink)
	require.NoError(t, err)
	require.Equal(t, []string{"4141"}, sink.sent)
}

func TestInvalidHexInput(t *testing.T) {
	sink := &fakeSink{}
	err := Run(testContext(baseConfig()), &fakeSource{text: "xyz"}, sink)
	require.ErrorIs(t, err, processor.ErrHexDecode)
	require.Empty(t, sink.sent)
}

func TestOddLengthHexInput(t *testing.T) {
	sink := &fakeSink{}
	err := Run(testContext(baseConfig()), &fakeSource{text: "abc"}, sink)
	require.ErrorIs(t, err, processor.ErrHexDecode)
	require.Empty(t, sink.sent)
}

func TestInputSizeGuard(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxStreamSize = 4

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "0102030405"}, sink)
	require.ErrorIs(t, err, processor.ErrMaxSizeExceeded)

	var sizeErr *processor.SizeError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 4, sizeErr.Limit)
	require.Equal(t, 5, sizeErr.Actual)
	require.Empty(t, sink.sent)
}

func TestOutputSizeGuard(t *testing.T) {
	// Four bytes fit the bound, but base64 encoding expands them past it.
	cfg := baseConfig()
	cfg.MaxStreamSize = 4
	cfg.Base64Enabled = true
	cfg.Base64Encode = true
	cfg.Base64Padding = true

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "01020304"}, sink)
	require.ErrorIs(t, err, processor.ErrMaxSizeExceeded)

	var sizeErr *processor.SizeError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 4, sizeErr.Limit)
	require.Equal(t, 8, sizeErr.Actual)
	require.Empty(t, sink.sent)
}

func TestModuleFailureEmitsNothing(t *testing.T) {
	cfg := baseConfig()
	cfg.Base64Enabled = true
	cfg.Base64Encode = false // decode mode; input bytes are not base64 text
	cfg.Base64Padding = true

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "2121"}, sink)
	require.ErrorIs(t, err, processor.ErrModule)
	require.Empty(t, sink.sent)
}

func TestRegistryConstructionFailure(t *testing.T) {
	cfg := baseConfig()
	cfg.XorEnabled = true
	cfg.XorKey = "not-hex"

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "00"}, sink)
	require.ErrorIs(t, err, processor.ErrHexDecode)
	require.Empty(t, sink.sent)
}

func TestTransportErrorPropagates(t *testing.T) {
	sink := &fakeSink{}
	err := Run(testContext(baseConfig()), &fakeSource{err: processor.ErrTransport}, sink)
	require.ErrorIs(t, err, processor.ErrTransport)
	require.Empty(t, sink.sent)
}

func TestBase64DecodePipeline(t *testing.T) {
	// hex("aGVsbG8gd29ybGQ=") in, hex("hello world") out.
	cfg := baseConfig()
	cfg.Base64Enabled = true
	cfg.Base64Encode = false
	cfg.Base64Padding = true

	sink := &fakeSink{}
	err := Run(testContext(cfg), &fakeSource{text: "6147567362473867643239796247513d"}, sink)
	require.NoError(t, err)
	require.Equal(t, []string{"68656c6c6f20776f726c64"}, sink.sent)
}
