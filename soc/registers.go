package soc

import (
	"encoding/binary"
	"fmt"

	"github.com/signaloid/C0-microSD-utilities/transport"
)

// Register words cross the block interface little-endian: both the SoC and
// every supported host are little-endian, and fixing the byte order here
// keeps the wire format platform-independent.

// readRegister reads one 32-bit register at the given offset.
func readRegister(device string, op string, offset int64) (uint32, error) {
	word := make([]byte, RegisterSizeBytes)
	if _, err := transport.Read(device, word, offset); err != nil {
		return 0, &FatalError{Op: op, Err: err}
	}
	return binary.LittleEndian.Uint32(word), nil
}

// writeRegister writes one 32-bit register at the given offset.
func writeRegister(device string, op string, offset int64, value uint32) error {
	word := make([]byte, RegisterSizeBytes)
	binary.LittleEndian.PutUint32(word, value)
	if _, err := transport.Write(device, word, offset); err != nil {
		return &FatalError{Op: op, Err: err}
	}
	return nil
}

// ReadMMIOBuffer reads the full MMIO data buffer from the device.
func ReadMMIOBuffer(device string) ([]byte, error) {
	return ReadMMIOBufferSize(device, MMIOBufferSizeBytes)
}

// ReadMMIOBufferSize reads the first size bytes of the MMIO data buffer.
func ReadMMIOBufferSize(device string, size int) ([]byte, error) {
	if size > MMIOBufferSizeBytes {
		return nil, fmt.Errorf("read MMIO buffer: %w: %d > %d bytes",
			ErrBufferTooLarge, size, MMIOBufferSizeBytes)
	}

	buf := make([]byte, size)
	if _, err := transport.Read(device, buf, MMIOBufferOffset); err != nil {
		return nil, &FatalError{Op: "read MMIO buffer", Err: err}
	}
	return buf, nil
}

// WriteMMIOBuffer writes data to the start of the MMIO data buffer.
// data must not exceed MMIOBufferSizeBytes.
func WriteMMIOBuffer(device string, data []byte) error {
	if len(data) > MMIOBufferSizeBytes {
		return fmt.Errorf("write MMIO buffer: %w: %d > %d bytes",
			ErrBufferTooLarge, len(data), MMIOBufferSizeBytes)
	}

	if _, err := transport.Write(device, data, MMIOBufferOffset); err != nil {
		return &FatalError{Op: "write MMIO buffer", Err: err}
	}
	return nil
}

// GetConfigRegister reads the raw config register word.
func GetConfigRegister(device string) (uint32, error) {
	return readRegister(device, "get config register", ConfigRegisterOffset)
}

// SetConfigRegister writes the raw config register word.
func SetConfigRegister(device string, value uint32) error {
	return writeRegister(device, "set config register", ConfigRegisterOffset, value)
}

// GetConfigRegisterUnpacked reads the config register and unpacks its
// flag bits.
func GetConfigRegisterUnpacked(device string) (ConfigFields, error) {
	value, err := GetConfigRegister(device)
	if err != nil {
		return ConfigFields{}, err
	}
	return UnpackConfig(value), nil
}

// SetConfigRegisterUnpacked packs the flag fields and writes the config
// register. Reserved bits (4-31) are written as zero; use the raw
// GetConfigRegister/SetConfigRegister pair to preserve them.
func SetConfigRegisterUnpacked(device string, fields ConfigFields) error {
	return SetConfigRegister(device, PackConfig(fields))
}

// SetCommandRegister writes a command word to the command register.
// Command values are application-defined.
func SetCommandRegister(device string, command uint32) error {
	return writeRegister(device, "set command register", CommandRegisterOffset, command)
}

// GetStatusRegister reads the status register.
func GetStatusRegister(device string) (Status, error) {
	value, err := readRegister(device, "get status register", StatusRegisterOffset)
	if err != nil {
		return 0, err
	}
	return Status(value), nil
}

// GetBootAddressRegister reads the boot address register.
func GetBootAddressRegister(device string) (uint32, error) {
	return readRegister(device, "get boot address register", BootAddressRegisterOffset)
}

// SetBootAddressRegister writes the boot address register.
func SetBootAddressRegister(device string, bootAddress uint32) error {
	return writeRegister(device, "set boot address register", BootAddressRegisterOffset, bootAddress)
}
