package app

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
	"github.com/tldr-it-stepankutaj/byteproc/internal/processor/registry"
)

// Config contains the fully resolved runtime configuration for one
// invocation. It is built once from Viper (defaults < config file < env <
// flags) and never mutated afterwards.
type Config struct {
	MaxStreamSize int // bytes, derived from max_stream_size_kb

	InputType       string
	InputZMQSocket  string
	InputZMQBind    bool
	OutputType      string
	OutputZMQSocket string
	OutputZMQBind   bool

	ZMQReconnectInterval    time.Duration
	ZMQMaxReconnectAttempts int
	ZMQSendTimeout          time.Duration
	ZMQReceiveTimeout       time.Duration

	LogEnabled       bool
	LogLevel         string
	LogFile          string
	LogAppend        bool
	LogMaxFileSizeMB int
	LogRotationCount int

	XorEnabled bool
	XorKey     string
	XorPad     byte // parsed for compatibility; the transform never consults it

	Base64Enabled bool
	Base64Encode  bool
	Base64Padding bool
}

// Transport type and base64 mode values recognized in configuration.
const (
	InputStdin   = "stdin"
	InputZMQ     = "zmq_pull"
	OutputStdout = "stdout"
	OutputZMQ    = "zmq_push"
)

// SetDefaults registers the built-in defaults on v. Flags, environment and
// the config file all override these.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("max_stream_size_kb", 64)

	v.SetDefault("input_type", InputStdin)
	v.SetDefault("input_zmq_bind", false)
	v.SetDefault("output_type", OutputStdout)
	v.SetDefault("output_zmq_bind", false)

	v.SetDefault("zmq_reconnect_interval_ms", 1000)
	v.SetDefault("zmq_max_reconnect_attempts", 5)
	v.SetDefault("zmq_send_timeout_ms", 5000)
	v.SetDefault("zmq_receive_timeout_ms", 5000)

	v.SetDefault("log_enabled", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "byteproc.log")
	v.SetDefault("log_append", true)
	v.SetDefault("log_max_file_size_mb", 10)
	v.SetDefault("log_rotation_count", 5)

	v.SetDefault("xor_enabled", false)
	v.SetDefault("xor_pad", "00")

	v.SetDefault("base64_enabled", false)
	v.SetDefault("base64_mode", "encode")
	v.SetDefault("base64_padding", true)
}

// LoadConfig resolves and validates configuration from v. It fails fast
// with ErrInvalidConfiguration before any transport or module is built.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		InputType:       v.GetString("input_type"),
		InputZMQSocket:  v.GetString("input_zmq_socket"),
		InputZMQBind:    v.GetBool("input_zmq_bind"),
		OutputType:      v.GetString("output_type"),
		OutputZMQSocket: v.GetString("output_zmq_socket"),
		OutputZMQBind:   v.GetBool("output_zmq_bind"),

		ZMQReconnectInterval:    time.Duration(v.GetInt("zmq_reconnect_interval_ms")) * time.Millisecond,
		ZMQMaxReconnectAttempts: v.GetInt("zmq_max_reconnect_attempts"),
		ZMQSendTimeout:          time.Duration(v.GetInt("zmq_send_timeout_ms")) * time.Millisecond,
		ZMQReceiveTimeout:       time.Duration(v.GetInt("zmq_receive_timeout_ms")) * time.Millisecond,

		LogEnabled:       v.GetBool("log_enabled"),
		LogLevel:         v.GetString("log_level"),
		LogFile:          v.GetString("log_file"),
		LogAppend:        v.GetBool("log_append"),
		LogMaxFileSizeMB: v.GetInt("log_max_file_size_mb"),
		LogRotationCount: v.GetInt("log_rotation_count"),

		XorEnabled: v.GetBool("xor_enabled"),
		XorKey:     v.GetString("xor_key"),

		Base64Enabled: v.GetBool("base64_enabled"),
		Base64Padding: v.GetBool("base64_padding"),
	}

	sizeKB := v.GetInt("max_stream_size_kb")
	if sizeKB <= 0 {
		return Config{}, fmt.Errorf("%w: max_stream_size_kb must be positive, got %d",
			processor.ErrInvalidConfiguration, sizeKB)
	}
	if sizeKB > math.MaxInt/1024 {
		return Config{}, fmt.Errorf("%w: max_stream_size_kb too large",
			processor.ErrInvalidConfiguration)
	}
	cfg.MaxStreamSize = sizeKB * 1024

	if pad := v.GetString("xor_pad"); pad != "" {
		b, err := strconv.ParseUint(pad, 16, 8)
		if err != nil {
			return Config{}, fmt.Errorf("%w: xor_pad %q is not a hex byte",
				processor.ErrInvalidConfiguration, pad)
		}
		cfg.XorPad = byte(b)
	}

	switch mode := v.GetString("base64_mode"); mode {
	case "encode":
		cfg.Base64Encode = true
	case "decode":
		cfg.Base64Encode = false
	default:
		return Config{}, fmt.Errorf("%w: base64_mode must be encode or decode, got %q",
			processor.ErrInvalidConfiguration, mode)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.InputType {
	case InputStdin:
	case InputZMQ:
		if c.InputZMQSocket == "" {
			return fmt.Errorf("%w: input_zmq_socket must be set for %s",
				processor.ErrInvalidConfiguration, InputZMQ)
		}
	default:
		return fmt.Errorf("%w: unknown input_type %q",
			processor.ErrInvalidConfiguration, c.InputType)
	}

	switch c.OutputType {
	case OutputStdout:
	case OutputZMQ:
		if c.OutputZMQSocket == "" {
			return fmt.Errorf("%w: output_zmq_socket must be set for %s",
				processor.ErrInvalidConfiguration, OutputZMQ)
		}
	default:
		return fmt.Errorf("%w: unknown output_type %q",
			processor.ErrInvalidConfiguration, c.OutputType)
	}

	if c.XorEnabled && c.XorKey == "" {
		return fmt.Errorf("%w: xor_key must be set if xor_enabled",
			processor.ErrInvalidConfiguration)
	}
	return nil
}

// ProcessorOptions projects the module-related settings for the registry.
func (c Config) ProcessorOptions() registry.Options {
	return registry.Options{
		XorEnabled:    c.XorEnabled,
		XorKey:        c.XorKey,
		XorPad:        c.XorPad,
		Base64Enabled: c.Base64Enabled,
		Base64Encode:  c.Base64Encode,
		Base64Padding: c.Base64Padding,
	}
}
