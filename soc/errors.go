package soc

import (
	"errors"
	"fmt"
)

// FatalError wraps a transaction failure during a register operation.
//
// A failed or short register transaction means the device state is
// indeterminate: the transfer may have partially completed and the
// handshake can no longer be trusted. There is no safe way to continue,
// so every register operation reports such failures as fatal. Callers
// must abort the operation in progress rather than retry or proceed with
// assumed state.
type FatalError struct {
	// Op is the register operation that failed, e.g. "get status register"
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal reports whether err is (or wraps) a register-level fatal error.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// ErrBufferTooLarge is returned when a caller-supplied buffer exceeds the
// MMIO buffer size.
var ErrBufferTooLarge = errors.New("buffer exceeds MMIO buffer size")
