package toolkit

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signaloid/C0-microSD-utilities/soc"
	"github.com/signaloid/C0-microSD-utilities/transport"
)

// Toolkit orchestrates high-level operations against a C0-microSD:
// flashing images, starting and stopping the SoC core, and driving the
// command/status handshake.
//
// A Toolkit holds no device state beyond the path; every underlying
// register access is a self-contained transaction. Concurrent use against
// the same device path must be serialized by the caller.
type Toolkit struct {
	device string
	config Config
}

// New creates a Toolkit for the device at the given path.
//
// Example:
//
//	tk := toolkit.New("/dev/sda",
//	    toolkit.WithProgressCallback(progressFunc),
//	    toolkit.WithMaxAttempts(3),
//	)
func New(device string, opts ...Option) *Toolkit {
	if device == "" {
		panic("device path cannot be empty")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Toolkit{
		device: device,
		config: cfg,
	}
}

// Device returns the device path the toolkit operates on.
func (t *Toolkit) Device() string { return t.device }

// FlashAndVerify writes data to the device at offset and reads it back to
// verify, retrying up to the configured attempt limit. Returns a
// *VerificationError when every attempt fails verification.
//
// Verification can be disabled with WithVerifyAfterFlash(false), in which
// case a single write is performed.
func (t *Toolkit) FlashAndVerify(ctx context.Context, data []byte, offset int64) error {
	if len(data) == 0 {
		return fmt.Errorf("no data to flash")
	}

	start := time.Now()

	for attempt := 1; attempt <= t.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		t.reportProgress(Progress{
			Phase:       PhaseFlashing,
			Attempt:     attempt,
			MaxAttempts: t.config.MaxAttempts,
			Total:       len(data),
			Elapsed:     time.Since(start),
		})

		if _, err := transport.Write(t.device, data, offset); err != nil {
			return fmt.Errorf("flash at offset 0x%08X: %w", offset, err)
		}

		if !t.config.VerifyAfterFlash {
			t.reportComplete(len(data), start)
			return nil
		}

		t.reportProgress(Progress{
			Phase:        PhaseVerifying,
			Attempt:      attempt,
			MaxAttempts:  t.config.MaxAttempts,
			BytesWritten: len(data),
			Total:        len(data),
			Percentage:   50,
			Elapsed:      time.Since(start),
		})

		readBack := make([]byte, len(data))
		if _, err := transport.Read(t.device, readBack, offset); err != nil {
			return fmt.Errorf("read back at offset 0x%08X: %w", offset, err)
		}

		if bytes.Equal(readBack, data) {
			t.logInfo("flash verified",
				"offset", fmt.Sprintf("0x%08X", offset),
				"bytes", len(data),
				"attempt", attempt,
			)
			t.reportComplete(len(data), start)
			return nil
		}

		t.logError("flash verification failed",
			"offset", fmt.Sprintf("0x%08X", offset),
			"attempt", attempt,
			"max_attempts", t.config.MaxAttempts,
		)
	}

	return &VerificationError{
		Offset:   offset,
		Size:     len(data),
		Attempts: t.config.MaxAttempts,
	}
}

// FlashApplication flashes an application image to its SPI flash section.
func (t *Toolkit) FlashApplication(ctx context.Context, data []byte) error {
	t.logInfo("flashing application", "bytes", len(data))
	return t.FlashAndVerify(ctx, data, soc.ApplicationOffset)
}

// FlashBootloader flashes a bootloader image to its SPI flash section.
func (t *Toolkit) FlashBootloader(ctx context.Context, data []byte) error {
	t.logInfo("flashing bootloader", "bytes", len(data))
	return t.FlashAndVerify(ctx, data, soc.BootloaderOffset)
}

// FlashBitstream flashes an FPGA bitstream. The bitstream section of the
// non-volatile memory is locked by default; this unlocks it, flashes, and
// locks it again. The section is re-locked even when flashing fails.
//
// A failed bitstream flash can render the device inoperable; callers
// should confirm before invoking this.
func (t *Toolkit) FlashBitstream(ctx context.Context, data []byte) error {
	if err := t.UnlockBitstream(); err != nil {
		return err
	}

	t.logInfo("flashing bitstream", "bytes", len(data))
	flashErr := t.FlashAndVerify(ctx, data, soc.BitstreamOffset)

	if err := t.LockBitstream(); err != nil {
		if flashErr != nil {
			return flashErr
		}
		return err
	}

	return flashErr
}

// UnlockBitstream unlocks the bitstream section of the non-volatile
// memory. Reserved config register bits are preserved.
func (t *Toolkit) UnlockBitstream() error {
	t.logDebug("unlocking bitstream section")
	value, err := soc.GetConfigRegister(t.device)
	if err != nil {
		return err
	}
	return soc.SetConfigRegister(t.device, value|soc.ConfigBitUnlockBitstreamSection)
}

// LockBitstream locks the bitstream section of the non-volatile memory.
// Reserved config register bits are preserved.
func (t *Toolkit) LockBitstream() error {
	t.logDebug("locking bitstream section")
	value, err := soc.GetConfigRegister(t.device)
	if err != nil {
		return err
	}
	return soc.SetConfigRegister(t.device, value&^soc.ConfigBitUnlockBitstreamSection)
}

// StartCore releases the SoC core from reset. The command register is
// cleared first so the core comes up waiting for a command.
func (t *Toolkit) StartCore() error {
	t.logInfo("starting SoC core")
	if err := soc.SetCommandRegister(t.device, t.config.IdleCommand); err != nil {
		return err
	}
	return soc.SetConfigRegister(t.device, soc.ConfigBitRSTN)
}

// StopCore holds the SoC core in reset and clears the command register.
func (t *Toolkit) StopCore() error {
	t.logInfo("stopping SoC core")
	if err := soc.SetConfigRegister(t.device, 0); err != nil {
		return err
	}
	return soc.SetCommandRegister(t.device, t.config.IdleCommand)
}

// Status reads the device status register.
func (t *Toolkit) Status() (soc.Status, error) {
	return soc.GetStatusRegister(t.device)
}

// Calculate drives one complete command handshake: it writes command to
// the command register, polls the status register at the configured
// interval until the device reports done, reads the MMIO buffer, and
// finally writes the idle command until the device returns to the
// waiting-for-command state.
//
// An invalid-command status, or any status outside the conventional set,
// aborts the wait with an *InvalidCommandError. Cancellation via ctx is
// honored between polls.
func (t *Toolkit) Calculate(ctx context.Context, command uint32) ([]byte, error) {
	if err := soc.SetCommandRegister(t.device, command); err != nil {
		return nil, err
	}

	t.logDebug("command sent", "command", fmt.Sprintf("0x%08X", command))
	start := time.Now()

	var data []byte

poll:
	for {
		status, err := soc.GetStatusRegister(t.device)
		if err != nil {
			return nil, err
		}

		switch status {
		case soc.StatusCalculating, soc.StatusWaitingForCommand:
			t.reportProgress(Progress{
				Phase:   PhaseWaiting,
				Elapsed: time.Since(start),
			})
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("cancelled: %w", ctx.Err())
			case <-time.After(t.config.PollInterval):
			}

		case soc.StatusDone:
			t.reportProgress(Progress{
				Phase:   PhaseReading,
				Elapsed: time.Since(start),
			})
			data, err = soc.ReadMMIOBuffer(t.device)
			if err != nil {
				return nil, err
			}
			break poll

		default:
			// Invalid command, or an application status value this
			// routine does not understand.
			return nil, &InvalidCommandError{
				Command: command,
				Status:  uint32(status),
			}
		}
	}

	if err := t.settle(ctx); err != nil {
		return nil, err
	}

	t.reportProgress(Progress{
		Phase:      PhaseComplete,
		Percentage: 100,
		Elapsed:    time.Since(start),
	})

	return data, nil
}

// settle writes the idle command until the device reports
// waiting-for-command again.
func (t *Toolkit) settle(ctx context.Context) error {
	for {
		status, err := soc.GetStatusRegister(t.device)
		if err != nil {
			return err
		}
		if status == soc.StatusWaitingForCommand {
			return nil
		}

		if err := soc.SetCommandRegister(t.device, t.config.IdleCommand); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled: %w", ctx.Err())
		case <-time.After(t.config.PollInterval):
		}
	}
}

// reportComplete emits the final progress event for a flash operation.
func (t *Toolkit) reportComplete(total int, start time.Time) {
	t.reportProgress(Progress{
		Phase:        PhaseComplete,
		BytesWritten: total,
		Total:        total,
		Percentage:   100,
		Elapsed:      time.Since(start),
	})
}

// reportProgress calls the progress callback if configured.
func (t *Toolkit) reportProgress(progress Progress) {
	if t.config.ProgressCallback != nil {
		t.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (t *Toolkit) logDebug(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (t *Toolkit) logInfo(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (t *Toolkit) logError(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Error(msg, keysAndValues...)
	}
}
