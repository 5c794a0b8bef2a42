package toolkit

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signaloid/C0-microSD-utilities/soc"
)

// buildBitstream assembles a framed prefix section followed by bitstream
// data, the way the build tooling lays it out in flash.
func buildBitstream(prefix []byte, data []byte) []byte {
	var out bytes.Buffer
	out.Write([]byte{0xFF, 0x00})
	out.Write(prefix)
	out.Write([]byte{0x00, 0xFF})
	out.Write(data)
	return out.Bytes()
}

func TestInspectBitstreamWithMetadata(t *testing.T) {
	device := newBackingStore(t)

	data := bytes.Repeat([]byte{0x3C, 0xC3}, 256)
	prefix := fmt.Sprintf(`{"bitstream_crc": %d, "bitstream_size": %d}`,
		crc32.ChecksumIEEE(data), len(data))
	seedBytes(t, device, soc.BitstreamOffset, buildBitstream([]byte(prefix), data))

	tk := New(device)
	info, err := tk.InspectBitstream(context.Background(), soc.BitstreamOffset)
	require.NoError(t, err)

	assert.True(t, info.HasMetadata)
	assert.True(t, info.CRCValid)
	assert.Equal(t, int64(len(data)), info.Size)
	assert.Equal(t, crc32.ChecksumIEEE(data), info.CRC)
	assert.Equal(t, []byte(prefix), info.Prefix)
}

func TestInspectBitstreamCRCMismatch(t *testing.T) {
	device := newBackingStore(t)

	data := bytes.Repeat([]byte{0x55}, 128)
	prefix := fmt.Sprintf(`{"bitstream_crc": %d, "bitstream_size": %d}`,
		crc32.ChecksumIEEE(data), len(data))
	image := buildBitstream([]byte(prefix), data)
	// Corrupt one bitstream byte after computing the recorded CRC.
	image[len(image)-1] ^= 0xFF
	seedBytes(t, device, soc.BitstreamOffset, image)

	tk := New(device)
	info, err := tk.InspectBitstream(context.Background(), soc.BitstreamOffset)
	require.NoError(t, err)

	assert.True(t, info.HasMetadata)
	assert.False(t, info.CRCValid)
}

func TestInspectBitstreamFreeFormPrefix(t *testing.T) {
	device := newBackingStore(t)
	seedBytes(t, device, soc.BitstreamOffset,
		buildBitstream([]byte("built by icepack"), []byte{0xAA}))

	tk := New(device)
	info, err := tk.InspectBitstream(context.Background(), soc.BitstreamOffset)
	require.NoError(t, err)

	assert.False(t, info.HasMetadata)
	assert.Equal(t, []byte("built by icepack"), info.Prefix)
}

func TestInspectBitstreamNoPrefix(t *testing.T) {
	device := newBackingStore(t)

	tk := New(device)
	_, err := tk.InspectBitstream(context.Background(), soc.BitstreamOffset)

	var notFound *PrefixNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, soc.BitstreamOffset, notFound.Offset)
}

func TestVerifyBitstreamCRC(t *testing.T) {
	device := newBackingStore(t)

	data := bytes.Repeat([]byte{0x77}, 64)
	seedBytes(t, device, 0x100, data)

	tk := New(device)
	require.NoError(t,
		tk.VerifyBitstreamCRC(0x100, 0, int64(len(data)), crc32.ChecksumIEEE(data)))

	err := tk.VerifyBitstreamCRC(0x100, 0, int64(len(data)), 0xDEADBEEF)
	var mismatch *CRCMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint32(0xDEADBEEF), mismatch.Expected)
}
