package toolkit

import (
	"time"

	"github.com/signaloid/C0-microSD-utilities/soc"
)

// Config holds the toolkit configuration.
type Config struct {
	// ProgressCallback is called during operations to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// MaxAttempts is the number of flash-and-verify attempts before
	// giving up
	MaxAttempts int

	// PollInterval is the delay between status register polls while
	// waiting for a calculation
	PollInterval time.Duration

	// VerifyAfterFlash enables read-back verification after flashing
	VerifyAfterFlash bool

	// IdleCommand is written to return the device to the
	// waiting-for-command state after a calculation
	IdleCommand uint32
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		MaxAttempts:      5,
		PollInterval:     500 * time.Millisecond,
		VerifyAfterFlash: true,
		IdleCommand:      soc.CommandIdle,
	}
}

// Option is a functional option for configuring the Toolkit.
type Option func(*Config)

// WithProgressCallback sets a callback function to track operation progress.
//
// Example:
//
//	tk := toolkit.New(device,
//	    toolkit.WithProgressCallback(func(p toolkit.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for toolkit operations.
//
// Example:
//
//	tk := toolkit.New(device, toolkit.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMaxAttempts sets the number of flash-and-verify attempts.
// Default is 5.
func WithMaxAttempts(attempts int) Option {
	return func(c *Config) {
		if attempts > 0 {
			c.MaxAttempts = attempts
		}
	}
}

// WithPollInterval sets the delay between status register polls.
// Default is 500ms.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.PollInterval = interval
		}
	}
}

// WithVerifyAfterFlash enables or disables read-back verification after
// flashing. Default is true.
func WithVerifyAfterFlash(verify bool) Option {
	return func(c *Config) {
		c.VerifyAfterFlash = verify
	}
}

// WithIdleCommand sets the command written to return the device to the
// waiting-for-command state after a calculation. Default is 0.
func WithIdleCommand(command uint32) Option {
	return func(c *Config) {
		c.IdleCommand = command
	}
}
