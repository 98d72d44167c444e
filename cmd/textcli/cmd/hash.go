package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Print the 64-bit content hash",
	Long:  `Prints the stable 64-bit content hash of the argument, or of standard input, as hex.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHash,
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("%016x", v.Hash())))
	return nil
}
