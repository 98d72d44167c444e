package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	trimFront bool
	trimBack  bool
)

var trimCmd = &cobra.Command{
	Use:   "trim [text]",
	Short: "Strip surrounding whitespace",
	Long: `Removes leading and trailing whitespace from the argument, or from
standard input. With --front or --back only that side is trimmed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrim,
}

func init() {
	trimCmd.Flags().BoolVar(&trimFront, "front", false, "trim only leading whitespace")
	trimCmd.Flags().BoolVar(&trimBack, "back", false, "trim only trailing whitespace")
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	switch {
	case trimFront && !trimBack:
		v.TrimFront()
	case trimBack && !trimFront:
		v.TrimBack()
	default:
		v.Trim()
	}

	fmt.Println(v.String())
	return nil
}
