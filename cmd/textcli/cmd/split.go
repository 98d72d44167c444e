package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htiek/text/core/log"
	"github.com/htiek/text/text"
)

var splitSep string

var splitCmd = &cobra.Command{
	Use:   "split [text]",
	Short: "Split text on a separator",
	Long: `Splits the argument, or standard input, on each occurrence of the
separator and prints one token per line. Empty tokens are dropped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitSep, "sep", "s", ",", "separator to split on")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	tokens, err := v.Split(text.Str(splitSep))
	if err != nil {
		printError("splitting", err)
		return err
	}

	logger.Debug("split input", log.Int("tokens", len(tokens)))
	for _, tok := range tokens {
		fmt.Println(tokenStyle.Render(tok.String()))
	}
	return nil
}
