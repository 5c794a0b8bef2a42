// Package toolkit provides high-level operations for the Signaloid
// C0-microSD: flashing images, core control, bitstream inspection, and
// the command/status calculation handshake.
//
// # Overview
//
// The toolkit builds on the soc and transport packages:
//   - Flash application, bootloader, and bitstream images with read-back
//     verification and retries
//   - Start and stop the SoC core
//   - Send a command and wait for the result through the MMIO buffer
//   - Inspect a flashed bitstream's prefix metadata and verify its CRC
//
// # Basic Usage
//
//	tk := toolkit.New("/dev/sda")
//
//	data, err := firmware.Load("application.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := tk.FlashApplication(context.Background(), data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
//	tk := toolkit.New("/dev/sda",
//	    toolkit.WithProgressCallback(func(p toolkit.Progress) {
//	        fmt.Printf("[%s] attempt %d/%d\n", p.Phase, p.Attempt, p.MaxAttempts)
//	    }),
//	)
//
// # Calculation Handshake
//
//	result, err := tk.Calculate(ctx, 0x00000001)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result holds the MMIO buffer contents after the device reported done
//
// # Error Handling
//
// Register-level failures surface as *soc.FatalError and must be treated
// as unrecoverable. The toolkit adds its own structured errors:
//   - VerificationError: flash read-back mismatch after all attempts
//   - InvalidCommandError: device rejected a command
//   - PrefixNotFoundError: no bitstream prefix section found
//   - CRCMismatchError: bitstream checksum mismatch
//
// # Logging
//
// Integrate with any logging framework by implementing Logger:
//
//	tk := toolkit.New("/dev/sda", toolkit.WithLogger(myLogger))
package toolkit
