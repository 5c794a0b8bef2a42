package soc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newBackingStore creates a sparse file covering the device address space,
// standing in for the block device.
func newBackingStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create backing store: %v", err)
	}
	if err := f.Truncate(MMIOBufferOffset + MMIOBufferSizeBytes); err != nil {
		t.Fatalf("size backing store: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close backing store: %v", err)
	}
	return path
}

// seedWord writes a little-endian word directly into the backing store.
func seedWord(t *testing.T, path string, offset int64, value uint32) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open backing store: %v", err)
	}
	defer f.Close()

	word := make([]byte, RegisterSizeBytes)
	binary.LittleEndian.PutUint32(word, value)
	if _, err := f.WriteAt(word, offset); err != nil {
		t.Fatalf("seed word: %v", err)
	}
}

func TestGetStatusRegister(t *testing.T) {
	tests := []struct {
		name string
		raw  uint32
		want Status
	}{
		{name: "waiting", raw: 0, want: StatusWaitingForCommand},
		{name: "calculating", raw: 1, want: StatusCalculating},
		{name: "done", raw: 2, want: StatusDone},
		{name: "invalid command", raw: 3, want: StatusInvalidCommand},
		{name: "out of range passes through", raw: 42, want: Status(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := newBackingStore(t)
			seedWord(t, device, StatusRegisterOffset, tt.raw)

			got, err := GetStatusRegister(device)
			if err != nil {
				t.Fatalf("GetStatusRegister() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetStatusRegister() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigRegisterRoundTrip(t *testing.T) {
	device := newBackingStore(t)

	if err := SetConfigRegister(device, 0xA5A5000F); err != nil {
		t.Fatalf("SetConfigRegister() error = %v", err)
	}
	got, err := GetConfigRegister(device)
	if err != nil {
		t.Fatalf("GetConfigRegister() error = %v", err)
	}
	if got != 0xA5A5000F {
		t.Errorf("GetConfigRegister() = 0x%08X, want 0xA5A5000F", got)
	}
}

func TestConfigRegisterUnpackedRoundTrip(t *testing.T) {
	device := newBackingStore(t)

	fields := ConfigFields{RSTN: true, SWLEDEnable: true}
	if err := SetConfigRegisterUnpacked(device, fields); err != nil {
		t.Fatalf("SetConfigRegisterUnpacked() error = %v", err)
	}

	got, err := GetConfigRegisterUnpacked(device)
	if err != nil {
		t.Fatalf("GetConfigRegisterUnpacked() error = %v", err)
	}
	if got != fields {
		t.Errorf("GetConfigRegisterUnpacked() = %+v, want %+v", got, fields)
	}

	// The raw register word must be exactly the packed bits.
	raw, err := GetConfigRegister(device)
	if err != nil {
		t.Fatalf("GetConfigRegister() error = %v", err)
	}
	if raw != 0b0101 {
		t.Errorf("raw config register = 0b%04b, want 0b0101", raw)
	}
}

func TestBootAddressRegisterRoundTrip(t *testing.T) {
	device := newBackingStore(t)

	if err := SetBootAddressRegister(device, uint32(MainMemoryOffset)); err != nil {
		t.Fatalf("SetBootAddressRegister() error = %v", err)
	}
	got, err := GetBootAddressRegister(device)
	if err != nil {
		t.Fatalf("GetBootAddressRegister() error = %v", err)
	}
	if got != uint32(MainMemoryOffset) {
		t.Errorf("GetBootAddressRegister() = 0x%08X, want 0x%08X", got, MainMemoryOffset)
	}
}

func TestSetCommandRegister(t *testing.T) {
	device := newBackingStore(t)

	if err := SetCommandRegister(device, 0x00C0FFEE); err != nil {
		t.Fatalf("SetCommandRegister() error = %v", err)
	}

	// Verify the word landed at the command register offset, little-endian.
	raw, err := os.ReadFile(device)
	if err != nil {
		t.Fatalf("read backing store: %v", err)
	}
	got := binary.LittleEndian.Uint32(raw[CommandRegisterOffset:])
	if got != 0x00C0FFEE {
		t.Errorf("command register = 0x%08X, want 0x00C0FFEE", got)
	}
}

func TestMMIOBufferRoundTrip(t *testing.T) {
	device := newBackingStore(t)

	data := bytes.Repeat([]byte{0x5A, 0xA5}, MMIOBufferSizeBytes/2)
	if err := WriteMMIOBuffer(device, data); err != nil {
		t.Fatalf("WriteMMIOBuffer() error = %v", err)
	}

	got, err := ReadMMIOBuffer(device)
	if err != nil {
		t.Fatalf("ReadMMIOBuffer() error = %v", err)
	}
	if len(got) != MMIOBufferSizeBytes {
		t.Fatalf("ReadMMIOBuffer() returned %d bytes, want %d", len(got), MMIOBufferSizeBytes)
	}
	if !bytes.Equal(got, data) {
		t.Error("ReadMMIOBuffer() does not match written data")
	}
}

func TestReadMMIOBufferSize(t *testing.T) {
	device := newBackingStore(t)

	if err := WriteMMIOBuffer(device, []byte("signaloid")); err != nil {
		t.Fatalf("WriteMMIOBuffer() error = %v", err)
	}

	got, err := ReadMMIOBufferSize(device, 9)
	if err != nil {
		t.Fatalf("ReadMMIOBufferSize() error = %v", err)
	}
	if string(got) != "signaloid" {
		t.Errorf("ReadMMIOBufferSize() = %q, want %q", got, "signaloid")
	}
}

func TestMMIOBufferTooLarge(t *testing.T) {
	device := newBackingStore(t)

	err := WriteMMIOBuffer(device, make([]byte, MMIOBufferSizeBytes+1))
	if !errors.Is(err, ErrBufferTooLarge) {
		t.Errorf("WriteMMIOBuffer() error = %v, want ErrBufferTooLarge", err)
	}

	_, err = ReadMMIOBufferSize(device, MMIOBufferSizeBytes+1)
	if !errors.Is(err, ErrBufferTooLarge) {
		t.Errorf("ReadMMIOBufferSize() error = %v, want ErrBufferTooLarge", err)
	}
}

func TestRegisterErrorsAreFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		call func() error
	}{
		{name: "get status", call: func() error { _, err := GetStatusRegister(missing); return err }},
		{name: "get config", call: func() error { _, err := GetConfigRegister(missing); return err }},
		{name: "set config", call: func() error { return SetConfigRegister(missing, 0) }},
		{name: "get config unpacked", call: func() error { _, err := GetConfigRegisterUnpacked(missing); return err }},
		{name: "set config unpacked", call: func() error { return SetConfigRegisterUnpacked(missing, ConfigFields{}) }},
		{name: "set command", call: func() error { return SetCommandRegister(missing, 0) }},
		{name: "get boot address", call: func() error { _, err := GetBootAddressRegister(missing); return err }},
		{name: "set boot address", call: func() error { return SetBootAddressRegister(missing, 0) }},
		{name: "read MMIO buffer", call: func() error { _, err := ReadMMIOBuffer(missing); return err }},
		{name: "write MMIO buffer", call: func() error { return WriteMMIOBuffer(missing, []byte{0}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error for nonexistent device")
			}
			if !IsFatal(err) {
				t.Errorf("IsFatal(%v) = false, want true", err)
			}
		})
	}
}

func TestShortRegisterReadIsFatal(t *testing.T) {
	// Backing store too small to cover the register map.
	path := filepath.Join(t.TempDir(), "device")
	if err := os.WriteFile(path, make([]byte, 16), 0o644); err != nil {
		t.Fatalf("create backing store: %v", err)
	}

	_, err := GetStatusRegister(path)
	if err == nil {
		t.Fatal("GetStatusRegister() expected error for short read")
	}
	if !IsFatal(err) {
		t.Errorf("IsFatal(%v) = false, want true", err)
	}
}
