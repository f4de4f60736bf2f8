package byteproc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tldr-it-stepankutaj/byteproc/internal/app"
	"github.com/tldr-it-stepankutaj/byteproc/internal/pipeline"
	"github.com/tldr-it-stepankutaj/byteproc/internal/transport"
	"github.com/tldr-it-stepankutaj/byteproc/pkg/version"
)

const defaultConfigFile = "byteproc.json"

var rootCmd = &cobra.Command{
	Use:   "byteproc",
	Short: "Single-shot hex byte-stream processor",
	Long: "byteproc reads one hex-encoded message, runs the decoded bytes through " +
		"the configured module chain (passthrough, xor, base64) and emits the " +
		"hex-encoded result. One invocation processes exactly one message.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := readConfigFile(); err != nil {
			return err
		}
		cfg, err := app.LoadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		appCtx := app.NewContext(cmd.Context(), cfg)
		defer func() { _ = appCtx.Log.Sync() }()

		src, err := transport.NewSource(appCtx.Ctx, cfg)
		if err != nil {
			return err
		}
		defer src.Close()

		sink, err := transport.NewSink(appCtx.Ctx, cfg)
		if err != nil {
			return err
		}
		defer sink.Close()

		return pipeline.Run(appCtx, src, sink)
	},
}

func init() {
	f := rootCmd.PersistentFlags()

	f.String("config", "", "Path to JSON config file (default: $BYTEPROC_CONFIG, then ./"+defaultConfigFile+")")

	f.Int("max-stream-size-kb", 64, "Maximum decoded/processed stream size in KB")

	f.String("input-type", app.InputStdin, "Input transport (stdin|zmq_pull)")
	f.String("input-zmq-socket", "", "ZeroMQ endpoint for input (required for zmq_pull)")
	f.Bool("input-zmq-bind", false, "Bind rather than connect the input socket")
	f.String("output-type", app.OutputStdout, "Output transport (stdout|zmq_push)")
	f.String("output-zmq-socket", "", "ZeroMQ endpoint for output (required for zmq_push)")
	f.Bool("output-zmq-bind", false, "Bind rather than connect the output socket")

	f.Int("zmq-reconnect-interval-ms", 1000, "ZeroMQ reconnect interval")
	f.Int("zmq-max-reconnect-attempts", 5, "ZeroMQ maximum reconnect attempts")
	f.Int("zmq-send-timeout-ms", 5000, "ZeroMQ send timeout")
	f.Int("zmq-receive-timeout-ms", 5000, "ZeroMQ receive timeout")

	f.Bool("log-enabled", true, "Enable logging")
	f.String("log-level", "info", "Log level (debug|info|warn|error)")
	f.String("log-file", "byteproc.log", "Log file path")
	f.Bool("log-append", true, "Append to the log file instead of truncating")

	f.Bool("xor-enabled", false, "Enable the XOR module")
	f.String("xor-key", "", "Hex-encoded XOR key (required if xor is enabled)")
	f.String("xor-pad", "00", "Hex pad byte (accepted for compatibility; the key is always cycled)")

	f.Bool("base64-enabled", false, "Enable the base64 module")
	f.String("base64-mode", "encode", "Base64 direction (encode|decode)")
	f.Bool("base64-padding", true, "Use '=' padding for base64")

	// Bind flags to Viper. Precedence: flags > env > config file > defaults.
	bind := map[string]string{
		"config":                     "config",
		"max_stream_size_kb":         "max-stream-size-kb",
		"input_type":                 "input-type",
		"input_zmq_socket":           "input-zmq-socket",
		"input_zmq_bind":             "input-zmq-bind",
		"output_type":                "output-type",
		"output_zmq_socket":          "output-zmq-socket",
		"output_zmq_bind":            "output-zmq-bind",
		"zmq_reconnect_interval_ms":  "zmq-reconnect-interval-ms",
		"zmq_max_reconnect_attempts": "zmq-max-reconnect-attempts",
		"zmq_send_timeout_ms":        "zmq-send-timeout-ms",
		"zmq_receive_timeout_ms":     "zmq-receive-timeout-ms",
		"log_enabled":                "log-enabled",
		"log_level":                  "log-level",
		"log_file":                   "log-file",
		"log_append":                 "log-append",
		"xor_enabled":                "xor-enabled",
		"xor_key":                    "xor-key",
		"xor_pad":                    "xor-pad",
		"base64_enabled":             "base64-enabled",
		"base64_mode":                "base64-mode",
		"base64_padding":             "base64-padding",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	// Env support: BYTEPROC_XOR_KEY, BYTEPROC_INPUT_TYPE, etc.
	viper.SetEnvPrefix("BYTEPROC")
	viper.AutomaticEnv()

	app.SetDefaults(viper.GetViper())

	rootCmd.AddCommand(versionCmd)
}

// readConfigFile loads the optional JSON config file. Resolution order:
// --config flag, BYTEPROC_CONFIG, then ./byteproc.json. A missing file at
// the default path is not an error; an explicitly named missing file is.
func readConfigFile() error {
	path := viper.GetString("config")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	if err := viper.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// `version` subcommand.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
