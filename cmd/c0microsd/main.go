// Command c0microsd is the host-side toolkit for the Signaloid
// C0-microSD: it flashes bitstreams, bootloaders, and applications,
// controls the SoC core, and reports device status over the card's block
// interface.
package main

func main() {
	Execute()
}
