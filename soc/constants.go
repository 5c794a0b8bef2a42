package soc

// Memory-mapped I/O register offsets within the device's block address
// space. These must match the device firmware exactly.
const (
	// CommandRegisterOffset is the host-to-device command word
	CommandRegisterOffset int64 = 0x01000000

	// ConfigRegisterOffset is the SoC configuration word (see config bits)
	ConfigRegisterOffset int64 = 0x01000004

	// BootAddressRegisterOffset is the SoC boot address word
	BootAddressRegisterOffset int64 = 0x01000008

	// StatusRegisterOffset is the device-to-host status word
	StatusRegisterOffset int64 = 0x0100000C
)

// MMIO shared buffer location and size.
const (
	// MMIOBufferOffset is the start of the shared MMIO data buffer
	MMIOBufferOffset int64 = 0x01004000

	// MMIOBufferSizeBytes is the MMIO buffer size in bytes
	MMIOBufferSizeBytes = 8192

	// MMIOBufferSizeWords is the MMIO buffer size in 32-bit words
	MMIOBufferSizeWords = 2048
)

// Non-volatile memory and main memory offsets, used when flashing new
// bitstreams, bootloaders, and applications.
const (
	// BitstreamOffset is the FPGA bitstream location in SPI flash
	BitstreamOffset int64 = 0x00000000

	// BootloaderOffset is the bootloader image location in SPI flash
	BootloaderOffset int64 = 0x00100000

	// ApplicationOffset is the application image location in SPI flash
	ApplicationOffset int64 = 0x00180000

	// MainMemoryOffset is the start of main SoC memory
	MainMemoryOffset int64 = 0x01080000
)

// RegisterSizeBytes is the size of every MMIO register in bytes.
const RegisterSizeBytes = 4

// CommandIdle is the conventional no-op command written to return the
// device to the waiting-for-command state after a calculation.
const CommandIdle uint32 = 0
