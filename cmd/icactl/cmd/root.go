package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "ICACTL"

	flagConfig    = "config"
	flagLogFormat = "log-format"
	flagDebug     = "debug"
	flagOutput    = "output"

	outputText = "text"
	outputJSON = "json"
)

// appState is the state shared by every icactl command.
type appState struct {
	viper *viper.Viper
	log   *zap.Logger
}

// NewRootCmd returns the icactl root command.
func NewRootCmd() *cobra.Command {
	a := &appState{
		viper: viper.New(),
		log:   zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:           "icactl",
		Short:         "Encode and decode interchain query keys and registrations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "path to an optional YAML configuration file")
	rootCmd.PersistentFlags().String(flagLogFormat, "logfmt", "log format (logfmt, json or console)")
	rootCmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().StringP(flagOutput, "o", outputText, "output format (text or json)")
	if err := a.viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := a.initConfig(); err != nil {
			return err
		}

		log, err := newRootLogger(a.viper.GetString(flagLogFormat), a.viper.GetBool(flagDebug))
		if err != nil {
			return err
		}
		a.log = log

		return nil
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		// sync errors on stderr are expected on some platforms
		_ = a.log.Sync()
	}

	rootCmd.AddCommand(
		kvKeyCmd(a),
		kvKeysCmd(a),
		registerCmd(a),
	)

	return rootCmd
}

// initConfig reads ICACTL_ prefixed environment variables and the optional
// configuration file. Flags take precedence over both.
func (a *appState) initConfig() error {
	a.viper.SetEnvPrefix(envPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.viper.AutomaticEnv()

	cfgPath := a.viper.GetString(flagConfig)
	if cfgPath == "" {
		return nil
	}

	a.viper.SetConfigFile(cfgPath)
	if err := a.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
	}

	return nil
}

func newRootLogger(format string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
	}
	config.LevelKey = "lvl"

	var enc zapcore.Encoder
	switch format {
	case "json":
		enc = zapcore.NewJSONEncoder(config)
	case "console":
		enc = zapcore.NewConsoleEncoder(config)
	case "logfmt":
		enc = zaplogfmt.NewEncoder(config)
	default:
		return nil, fmt.Errorf("unrecognized log format %q", format)
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	return zap.New(zapcore.NewCore(enc, os.Stderr, level)), nil
}

// print writes v to the command output, as JSON when requested or with
// text otherwise.
func (a *appState) print(cmd *cobra.Command, v interface{}, text string) error {
	switch output := a.viper.GetString(flagOutput); output {
	case outputJSON:
		bz, err := json.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	case outputText:
		fmt.Fprintln(cmd.OutOrStdout(), text)
	default:
		return fmt.Errorf("unrecognized output format %q", output)
	}

	return nil
}
