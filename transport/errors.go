package transport

import "fmt"

// OpenError indicates that the device could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open device %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SeekError indicates that seeking to the target offset failed.
type SeekError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seek device %s to offset 0x%08X: %v", e.Path, e.Offset, e.Err)
}

func (e *SeekError) Unwrap() error { return e.Err }

// ShortTransferError indicates that a transaction transferred fewer bytes
// than requested, or that the underlying transfer failed outright.
// Transferred holds the number of bytes that did make it.
type ShortTransferError struct {
	// Op is "read" or "write"
	Op          string
	Path        string
	Offset      int64
	Requested   int
	Transferred int
	Err         error
}

func (e *ShortTransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s device %s at offset 0x%08X: %d of %d bytes: %v",
			e.Op, e.Path, e.Offset, e.Transferred, e.Requested, e.Err)
	}
	return fmt.Sprintf("%s device %s at offset 0x%08X: short transfer: %d of %d bytes",
		e.Op, e.Path, e.Offset, e.Transferred, e.Requested)
}

func (e *ShortTransferError) Unwrap() error { return e.Err }
