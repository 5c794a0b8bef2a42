package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagPad string
	flagYes bool
)

var flashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Flash images to the C0-microSD",
}

var flashApplicationCmd = &cobra.Command{
	Use:   "application <file>",
	Short: "Flash an application binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadImage(args[0], flagPad)
		if err != nil {
			return err
		}

		fmt.Printf("Filename: %s\nFile size: %d bytes.\n", args[0], len(data))
		fmt.Println("Flashing Signaloid SoC application...")
		return newToolkit().FlashApplication(cmd.Context(), data)
	},
}

var flashBootloaderCmd = &cobra.Command{
	Use:   "bootloader <file>",
	Short: "Flash a bootloader binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadImage(args[0], flagPad)
		if err != nil {
			return err
		}

		fmt.Printf("Filename: %s\nFile size: %d bytes.\n", args[0], len(data))
		fmt.Println("Flashing bootloader...")
		return newToolkit().FlashBootloader(cmd.Context(), data)
	},
}

var flashBitstreamCmd = &cobra.Command{
	Use:   "bitstream <file>",
	Short: "Flash a bitstream file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadImage(args[0], flagPad)
		if err != nil {
			return err
		}

		fmt.Printf("Filename: %s\nFile size: %d bytes.\n", args[0], len(data))
		if !flagYes && !confirmAction() {
			fmt.Println("Aborting.")
			os.Exit(exitUsage)
		}

		fmt.Println("Flashing bitstream...")
		return newToolkit().FlashBitstream(cmd.Context(), data)
	},
}

// confirmAction prompts the user to accept or reject a destructive action.
func confirmAction() bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("WARNING: This action may render the device inoperable. Proceed? (y/n): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true
		case "n":
			return false
		}
		fmt.Println("Invalid input. Please enter 'y' for yes or 'n' for no.")
	}
}

func init() {
	flashCmd.PersistentFlags().StringVarP(&flagPad, "pad", "p", "",
		"pad input file with zeros to target size (e.g. 64K, 5M)")
	flashBitstreamCmd.Flags().BoolVarP(&flagYes, "yes", "y", false,
		"skip the confirmation prompt")

	flashCmd.AddCommand(flashApplicationCmd)
	flashCmd.AddCommand(flashBootloaderCmd)
	flashCmd.AddCommand(flashBitstreamCmd)
	rootCmd.AddCommand(flashCmd)
}
