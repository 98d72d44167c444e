package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	texterror "github.com/htiek/text/core/error"
)

var caseCmd = &cobra.Command{
	Use:   "case upper|lower [text]",
	Short: "Convert text to upper or lower case",
	Long:  `Converts the ASCII letters of the argument, or standard input, to the requested case.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCase,
}

func init() {
	rootCmd.AddCommand(caseCmd)
}

func runCase(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args[1:])
	if err != nil {
		printError("reading input", err)
		return err
	}

	switch args[0] {
	case "upper":
		v.ToUpper()
	case "lower":
		v.ToLower()
	default:
		err := texterror.InvalidArgument("cli.case", "direction must be upper or lower").
			WithDetail("direction", args[0])
		printError("case", err)
		return err
	}

	fmt.Println(v.String())
	return nil
}
