package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signaloid/C0-microSD-utilities/soc"
)

var ledCmd = &cobra.Command{
	Use:   "led on|off",
	Short: "Control the software LED",
	Long: `Control the software LED. Enables software LED control and sets the
LED value through the config register's flag bits.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := soc.GetConfigRegisterUnpacked(flagDevice)
		if err != nil {
			return err
		}

		fields.SWLEDEnable = true
		fields.SWLED = args[0] == "on"
		if err := soc.SetConfigRegisterUnpacked(flagDevice, fields); err != nil {
			return err
		}

		fmt.Printf("Software LED %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ledCmd)
}
