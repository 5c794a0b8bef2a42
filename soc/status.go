package soc

import "fmt"

// Status is the value of the SoC status register. The device reports its
// side of the command handshake through it.
//
// Values outside the defined set are carried through unchanged; the
// register is a free-form 32-bit word and applications may define their
// own status values. Use Known to test for the conventional set.
type Status uint32

// Conventional status register values.
const (
	// StatusWaitingForCommand means the device is idle and ready
	StatusWaitingForCommand Status = 0

	// StatusCalculating means the device is executing a command
	StatusCalculating Status = 1

	// StatusDone means the device completed the last command
	StatusDone Status = 2

	// StatusInvalidCommand means the device rejected the last command
	StatusInvalidCommand Status = 3
)

// Known reports whether s is one of the conventional status values.
func (s Status) Known() bool {
	return s <= StatusInvalidCommand
}

// String returns a human-readable name for the status value.
func (s Status) String() string {
	switch s {
	case StatusWaitingForCommand:
		return "waiting-for-command"
	case StatusCalculating:
		return "calculating"
	case StatusDone:
		return "done"
	case StatusInvalidCommand:
		return "invalid-command"
	default:
		return fmt.Sprintf("unknown (%d)", uint32(s))
	}
}
