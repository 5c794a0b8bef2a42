package toolkit

import "fmt"

// VerificationError indicates that flashed data failed read-back
// verification after exhausting all attempts.
type VerificationError struct {
	Offset   int64
	Size     int
	Attempts int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("flash verification failed at offset 0x%08X (%d bytes) after %d attempts",
		e.Offset, e.Size, e.Attempts)
}

// InvalidCommandError indicates that the device rejected a command, or
// reported a status value outside the conventional set while a command
// was in flight.
type InvalidCommandError struct {
	Command uint32

	// Status is the raw status register value the device reported
	Status uint32
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("device rejected command 0x%08X (status %d)", e.Command, e.Status)
}

// PrefixNotFoundError indicates that no prefix section was found in a
// bitstream.
type PrefixNotFoundError struct {
	Offset int64
}

func (e *PrefixNotFoundError) Error() string {
	return fmt.Sprintf("no bitstream prefix section at offset 0x%08X", e.Offset)
}

// CRCMismatchError indicates that a bitstream's CRC32 does not match the
// checksum recorded in its prefix metadata.
type CRCMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("bitstream CRC mismatch: expected 0x%08X, got 0x%08X", e.Expected, e.Actual)
}
