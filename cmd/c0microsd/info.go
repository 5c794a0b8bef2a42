package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signaloid/C0-microSD-utilities/soc"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print target C0-microSD info and run bitstream verification",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tk := newToolkit()

		fmt.Println("Reading bitstream:")
		info, err := tk.InspectBitstream(cmd.Context(), soc.BitstreamOffset)
		if err != nil {
			return err
		}

		fmt.Printf("    Bitstream prefix section: %s\n", info.Prefix)
		if info.HasMetadata {
			if info.CRCValid {
				fmt.Println("    Bitstream CRC verification: PASS")
			} else {
				fmt.Println("    Bitstream CRC verification: FAIL")
			}
		} else {
			fmt.Println("    Unable to parse prefix for CRC verification")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
