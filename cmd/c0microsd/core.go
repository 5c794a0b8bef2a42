package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coreCmd = &cobra.Command{
	Use:       "core start|stop",
	Short:     "Start or stop the Signaloid SoC core",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"start", "stop"},
	RunE: func(cmd *cobra.Command, args []string) error {
		tk := newToolkit()

		switch args[0] {
		case "start":
			fmt.Println("Starting Signaloid SoC core")
			return tk.StartCore()
		case "stop":
			fmt.Println("Stopping Signaloid SoC core")
			return tk.StopCore()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coreCmd)
}
