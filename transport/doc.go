// Package transport implements raw block-device transactions against a
// Signaloid C0-microSD.
//
// # Transaction Model
//
// The C0-microSD exposes its MMIO registers and buffers at fixed byte
// offsets within its block address space. Every operation in this package
// is one complete transaction:
//
//	open -> seek -> read/write -> close
//
// The device is reopened for every transaction on purpose. Opening with
// O_SYNC|O_DSYNC and closing immediately forces the kernel to flush the
// transfer to the medium and prevents host-side caching from hiding
// device-side register changes. Keeping a persistent handle would break
// the command/status handshake: a status register read must always reflect
// the device's current state, never a cached block.
//
// Do not "optimize" callers by holding the device open across calls.
//
// # Usage
//
//	buf := make([]byte, 4)
//	n, err := transport.Read("/dev/sda", buf, 0x0100000C)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The package performs no locking. The device path is the only shared
// resource; serializing access to it is the caller's responsibility.
package transport
