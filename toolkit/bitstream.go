package toolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/signaloid/C0-microSD-utilities/transport"
)

// Bitstream prefix section framing. Lattice iCE40 bitstreams start with a
// free-form comment section delimited by these markers; the build tooling
// stores JSON metadata there.
var (
	prefixStartWord = []byte{0xFF, 0x00}
	prefixEndWord   = []byte{0x00, 0xFF}
)

// prefixSearchWindow is the number of bytes read when locating a prefix.
// The prefix section is assumed to never exceed 4 KiB.
const prefixSearchWindow = 4096

// prefixMetadata is the JSON payload the build tooling embeds in the
// bitstream prefix.
type prefixMetadata struct {
	BitstreamCRC  uint32 `json:"bitstream_crc"`
	BitstreamSize int64  `json:"bitstream_size"`
}

// BitstreamInfo describes a bitstream found on the device.
type BitstreamInfo struct {
	// Offset is the flash offset the bitstream was read from
	Offset int64

	// Prefix is the raw prefix section contents (markers stripped)
	Prefix []byte

	// HasMetadata reports whether the prefix carried parseable JSON
	// metadata with a CRC and size
	HasMetadata bool

	// Size is the bitstream size in bytes from the metadata
	Size int64

	// CRC is the expected bitstream CRC32 from the metadata
	CRC uint32

	// CRCValid reports whether the bitstream matched its recorded CRC;
	// meaningful only when HasMetadata is true
	CRCValid bool
}

// InspectBitstream reads the bitstream prefix section at the given flash
// offset and, when the prefix carries JSON metadata, verifies the
// bitstream's CRC32 against it.
//
// Returns a *PrefixNotFoundError when no prefix section is present.
// A metadata CRC that fails verification is reported through
// BitstreamInfo.CRCValid, not as an error; the caller decides whether a
// stale checksum is fatal.
func (t *Toolkit) InspectBitstream(ctx context.Context, offset int64) (*BitstreamInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	prefix, prefixLen, err := t.readPrefix(offset)
	if err != nil {
		return nil, err
	}

	info := &BitstreamInfo{
		Offset: offset,
		Prefix: prefix,
	}

	var meta prefixMetadata
	if err := json.Unmarshal(prefix, &meta); err != nil || meta.BitstreamSize <= 0 {
		// Prefix is free-form; missing metadata is not an error.
		t.logDebug("bitstream prefix carries no CRC metadata")
		return info, nil
	}

	info.HasMetadata = true
	info.Size = meta.BitstreamSize
	info.CRC = meta.BitstreamCRC

	// The bitstream proper starts right after the framed prefix section.
	bitstream := make([]byte, meta.BitstreamSize)
	if _, err := transport.Read(t.device, bitstream, offset+int64(prefixLen)); err != nil {
		return nil, fmt.Errorf("read bitstream at offset 0x%08X: %w", offset, err)
	}

	actual := crc32.ChecksumIEEE(bitstream)
	info.CRCValid = actual == meta.BitstreamCRC
	if !info.CRCValid {
		t.logError("bitstream CRC mismatch",
			"expected", fmt.Sprintf("0x%08X", meta.BitstreamCRC),
			"actual", fmt.Sprintf("0x%08X", actual),
		)
	}

	return info, nil
}

// VerifyBitstreamCRC reads size bytes of bitstream at the given flash
// offset (skipping prefixLen prefix bytes) and compares their CRC32
// against expected. Returns a *CRCMismatchError on mismatch.
func (t *Toolkit) VerifyBitstreamCRC(offset int64, prefixLen int, size int64, expected uint32) error {
	bitstream := make([]byte, size)
	if _, err := transport.Read(t.device, bitstream, offset+int64(prefixLen)); err != nil {
		return fmt.Errorf("read bitstream at offset 0x%08X: %w", offset, err)
	}

	if actual := crc32.ChecksumIEEE(bitstream); actual != expected {
		return &CRCMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}

// readPrefix locates the prefix section in the first prefixSearchWindow
// bytes at offset. Returns the prefix contents and the total framed
// length (markers included) so callers can locate the bitstream start.
func (t *Toolkit) readPrefix(offset int64) ([]byte, int, error) {
	window := make([]byte, prefixSearchWindow)
	if _, err := transport.Read(t.device, window, offset); err != nil {
		return nil, 0, fmt.Errorf("read bitstream prefix at offset 0x%08X: %w", offset, err)
	}

	start := bytes.Index(window, prefixStartWord)
	if start < 0 {
		return nil, 0, &PrefixNotFoundError{Offset: offset}
	}
	body := start + len(prefixStartWord)
	end := bytes.Index(window[body:], prefixEndWord)
	if end < 0 {
		return nil, 0, &PrefixNotFoundError{Offset: offset}
	}
	end += body + len(prefixEndWord)

	prefix := window[start+len(prefixStartWord) : end-len(prefixEndWord)]
	return prefix, end, nil
}
