package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signaloid/C0-microSD-utilities/soc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Read and print the SoC status and config registers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := soc.GetStatusRegister(flagDevice)
		if err != nil {
			return err
		}
		fields, err := soc.GetConfigRegisterUnpacked(flagDevice)
		if err != nil {
			return err
		}
		bootAddress, err := soc.GetBootAddressRegister(flagDevice)
		if err != nil {
			return err
		}

		fmt.Printf("Status:       %s\n", status)
		fmt.Printf("Boot address: 0x%08X\n", bootAddress)
		fmt.Printf("Core running: %v\n", fields.RSTN)
		fmt.Printf("Bitstream section unlocked: %v\n", fields.UnlockBitstreamSection)
		fmt.Printf("Software LED: enabled=%v value=%v\n", fields.SWLEDEnable, fields.SWLED)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
