package toolkit

import "time"

// Phase names reported through Progress.
const (
	// PhaseFlashing means image data is being written to the device
	PhaseFlashing = "flashing"

	// PhaseVerifying means written data is being read back and compared
	PhaseVerifying = "verifying"

	// PhaseWaiting means the toolkit is polling the status register
	PhaseWaiting = "waiting"

	// PhaseReading means the MMIO buffer is being read back
	PhaseReading = "reading"

	// PhaseComplete means the operation finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about a long-running toolkit operation.
// Passed to ProgressCallback during flashing and calculation.
type Progress struct {
	// Phase is one of the Phase* constants
	Phase string

	// Attempt is the current flash attempt (1-based), 0 outside flashing
	Attempt int

	// MaxAttempts is the configured flash attempt limit
	MaxAttempts int

	// BytesWritten is the number of image bytes written so far
	BytesWritten int

	// Total is the total number of image bytes to write
	Total int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// Elapsed is the time since the operation started
	Elapsed time.Duration
}

// ProgressCallback is called during toolkit operations to report progress.
// Implementations should return quickly to avoid blocking the operation.
//
// Example:
//
//	tk := toolkit.New(device,
//	    toolkit.WithProgressCallback(func(p toolkit.Progress) {
//	        fmt.Printf("[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// toolkit. This allows integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
