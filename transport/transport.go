package transport

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Open flags for device transactions. O_SYNC and O_DSYNC request
// write-through semantics so that every transfer hits the medium before
// the call returns and no stale cache is read back.
const (
	readFlags  = os.O_RDONLY | unix.O_SYNC | unix.O_DSYNC
	writeFlags = os.O_WRONLY | unix.O_SYNC | unix.O_DSYNC
)

// Read performs one read transaction against the device at path device:
// it opens the device, seeks to offset, reads exactly len(dst) bytes into
// dst, and closes the device before returning.
//
// The returned count is the number of bytes actually read. A short read is
// reported as a *ShortTransferError alongside the partial count.
//
// Example:
//
//	word := make([]byte, 4)
//	if _, err := transport.Read(device, word, soc.StatusRegisterOffset); err != nil {
//	    return err
//	}
func Read(device string, dst []byte, offset int64) (int, error) {
	f, err := os.OpenFile(device, readFlags, 0)
	if err != nil {
		return -1, &OpenError{Path: device, Err: err}
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return -1, &SeekError{Path: device, Offset: offset, Err: err}
	}

	n, err := io.ReadFull(f, dst)
	if err != nil {
		return n, &ShortTransferError{
			Op:          "read",
			Path:        device,
			Offset:      offset,
			Requested:   len(dst),
			Transferred: n,
			Err:         err,
		}
	}

	return n, nil
}

// Write performs one write transaction against the device at path device:
// it opens the device, seeks to offset, writes exactly len(src) bytes from
// src, and closes the device before returning.
//
// The returned count is the number of bytes actually written. A short
// write is reported as a *ShortTransferError alongside the partial count.
func Write(device string, src []byte, offset int64) (int, error) {
	f, err := os.OpenFile(device, writeFlags, 0)
	if err != nil {
		return -1, &OpenError{Path: device, Err: err}
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return -1, &SeekError{Path: device, Offset: offset, Err: err}
	}

	n, err := f.Write(src)
	if err != nil || n != len(src) {
		return n, &ShortTransferError{
			Op:          "write",
			Path:        device,
			Offset:      offset,
			Requested:   len(src),
			Transferred: n,
			Err:         err,
		}
	}

	return n, nil
}
