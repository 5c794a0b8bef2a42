package soc

// Config register bit positions. Bits 4-31 are reserved and always written
// as zero by PackConfig; callers that need to preserve reserved bits must
// use the raw GetConfigRegister/SetConfigRegister pair and merge manually.
const (
	// ConfigBitRSTN is the SoC core reset signal (active high starts the core)
	ConfigBitRSTN uint32 = 1 << 0

	// ConfigBitUnlockBitstreamSection unlocks the bitstream section of
	// the non-volatile memory for writing
	ConfigBitUnlockBitstreamSection uint32 = 1 << 1

	// ConfigBitSWLEDEnable hands LED control to software
	ConfigBitSWLEDEnable uint32 = 1 << 2

	// ConfigBitSWLED is the software LED value (when enabled)
	ConfigBitSWLED uint32 = 1 << 3
)

// ConfigFields is the unpacked form of the config register's flag bits.
type ConfigFields struct {
	// RSTN is the SoC core reset signal
	RSTN bool

	// UnlockBitstreamSection unlocks the bitstream flash section
	UnlockBitstreamSection bool

	// SWLEDEnable enables software control of the LED
	SWLEDEnable bool

	// SWLED is the software LED value
	SWLED bool
}

// PackConfig packs the flag fields into a config register word.
// Bits 4-31 of the result are always zero.
func PackConfig(fields ConfigFields) uint32 {
	var value uint32
	if fields.RSTN {
		value |= ConfigBitRSTN
	}
	if fields.UnlockBitstreamSection {
		value |= ConfigBitUnlockBitstreamSection
	}
	if fields.SWLEDEnable {
		value |= ConfigBitSWLEDEnable
	}
	if fields.SWLED {
		value |= ConfigBitSWLED
	}
	return value
}

// UnpackConfig extracts the flag fields from a config register word.
// Reserved bits are ignored.
func UnpackConfig(value uint32) ConfigFields {
	return ConfigFields{
		RSTN:                   value&ConfigBitRSTN != 0,
		UnlockBitstreamSection: value&ConfigBitUnlockBitstreamSection != 0,
		SWLEDEnable:            value&ConfigBitSWLEDEnable != 0,
		SWLED:                  value&ConfigBitSWLED != 0,
	}
}
