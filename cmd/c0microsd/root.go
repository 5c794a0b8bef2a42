package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/signaloid/C0-microSD-utilities/firmware"
	"github.com/signaloid/C0-microSD-utilities/toolkit"
)

// appVersion is the toolkit application version.
const appVersion = "1.0"

// deviceEnvVar names the environment variable holding the default device
// path. A .env file in the working directory is honored.
const deviceEnvVar = "C0_MICROSD_DEVICE"

// sysexits-style exit codes, matching the original toolkit.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitNoPerm   = 77
	exitSoftware = 70
)

var (
	flagDevice  string
	flagVerbose bool

	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "c0microsd",
	Short: "Signaloid C0-microSD toolkit",
	Long: `Signaloid C0-microSD toolkit. Flashes bitstreams, bootloaders, and
applications, controls the SoC core, and reports device status over the
card's block-device interface.`,
	Version:       appVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).Level(level).With().Timestamp().Logger()

		if flagDevice == "" {
			flagDevice = os.Getenv(deviceEnvVar)
		}
		if flagDevice == "" {
			return fmt.Errorf("no target device: use --device or set %s", deviceEnvVar)
		}
		return nil
	},
}

func init() {
	// Load defaults from .env before flag parsing resolves env fallbacks.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&flagDevice, "device", "d", "",
		"target device path (default $"+deviceEnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

// Execute runs the root command and exits with a sysexits-style code on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\nAn error occurred, aborting.\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a sysexits-style exit code.
func exitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return exitNoInput
	case errors.Is(err, fs.ErrPermission):
		return exitNoPerm
	case errors.As(err, &pathErr):
		return exitNoInput
	}

	var verifyErr *toolkit.VerificationError
	var crcErr *toolkit.CRCMismatchError
	var prefixErr *toolkit.PrefixNotFoundError
	if errors.As(err, &verifyErr) || errors.As(err, &crcErr) || errors.As(err, &prefixErr) {
		return exitDataErr
	}

	return exitSoftware
}

// newToolkit builds a Toolkit wired to the CLI logger and a console
// progress printer.
func newToolkit() *toolkit.Toolkit {
	return toolkit.New(flagDevice,
		toolkit.WithLogger(zerologAdapter{logger}),
		toolkit.WithProgressCallback(printProgress),
	)
}

// printProgress renders toolkit progress on stdout.
func printProgress(p toolkit.Progress) {
	switch p.Phase {
	case toolkit.PhaseFlashing:
		fmt.Printf("Attempt %d of %d: Flashing...\n", p.Attempt, p.MaxAttempts)
	case toolkit.PhaseVerifying:
		fmt.Println("Verifying...")
	case toolkit.PhaseWaiting:
		fmt.Print(".")
	case toolkit.PhaseReading:
		fmt.Println("\nReading data content...")
	case toolkit.PhaseComplete:
		fmt.Println("Done.")
	}
}

// zerologAdapter satisfies toolkit.Logger with a zerolog.Logger.
type zerologAdapter struct {
	log zerolog.Logger
}

func (a zerologAdapter) Debug(msg string, keysAndValues ...interface{}) {
	emit(a.log.Debug(), msg, keysAndValues)
}

func (a zerologAdapter) Info(msg string, keysAndValues ...interface{}) {
	emit(a.log.Info(), msg, keysAndValues)
}

func (a zerologAdapter) Error(msg string, keysAndValues ...interface{}) {
	emit(a.log.Error(), msg, keysAndValues)
}

func emit(e *zerolog.Event, msg string, keysAndValues []interface{}) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}

// loadImage reads an image file, applying the --pad flag when set.
func loadImage(path, padFlag string) ([]byte, error) {
	if padFlag == "" {
		return firmware.Load(path)
	}

	padTo, err := firmware.ParseSize(padFlag)
	if err != nil {
		return nil, err
	}
	data, err := firmware.LoadPadded(path, padTo)
	if err != nil {
		return nil, err
	}
	if padTo < int64(len(data)) {
		logger.Warn().
			Int64("pad", padTo).
			Int("size", len(data)).
			Msg("padding size smaller than input file, no padding applied")
	}
	return data, nil
}
