// Package firmware loads binary images for flashing to the C0-microSD.
//
// Images (bitstreams, bootloaders, applications) are opaque binaries.
// The only preparation the device needs is optional zero-padding up to a
// flash-section boundary, since the flashing flow rewrites whole sections.
//
// # Usage
//
// Load an image as-is:
//
//	data, err := firmware.Load("application.bin")
//
// Load and pad to a target size, with human-friendly size suffixes:
//
//	size, err := firmware.ParseSize("512K")
//	data, err := firmware.LoadPadded("application.bin", size)
//
// A pad size smaller than the image leaves the image unchanged.
package firmware
