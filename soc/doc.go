// Package soc provides typed access to the Signaloid C0-microSD SoC's
// memory-mapped registers and MMIO buffer.
//
// # Register Map
//
// The SoC exposes four 32-bit registers and an 8 KiB shared buffer at
// fixed offsets within the device's block address space:
//
//	command register       0x01000000
//	config register        0x01000004
//	boot address register  0x01000008
//	status register        0x0100000C
//	MMIO buffer            0x01004000  (8192 bytes)
//
// The map is shared between host and device firmware; the two must match
// exactly. Every operation here is built on the transport package and
// therefore performs one complete open-seek-transfer-close transaction
// per call.
//
// # Handshake
//
// Host and device communicate through the command and status registers:
// the host writes a command word, the device reports progress through the
// status register (waiting-for-command, calculating, done, or
// invalid-command), and data moves through the MMIO buffer.
//
// # Basic Usage
//
//	status, err := soc.GetStatusRegister("/dev/sda")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if status == soc.StatusDone {
//	    data, err := soc.ReadMMIOBuffer("/dev/sda")
//	    // ...
//	}
//
// # Error Handling
//
// A failed or short transaction leaves the device/protocol state
// indeterminate, so there is no safe partial result to return. Every
// operation wraps such failures in *FatalError; callers must treat a
// fatal error as unrecoverable for the operation in progress and must not
// continue with assumed state. Use IsFatal to distinguish it.
package soc
