package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htiek/text/core/log"
	"github.com/htiek/text/text"
)

var (
	replaceOld string
	replaceNew string
)

var replaceCmd = &cobra.Command{
	Use:   "replace [text]",
	Short: "Replace every occurrence of a pattern",
	Long: `Replaces every occurrence of the --old pattern with the --new text in
the argument, or in standard input. Replacement text is never rescanned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().StringVar(&replaceOld, "old", "", "pattern to replace (required)")
	replaceCmd.Flags().StringVar(&replaceNew, "new", "", "replacement text")
	replaceCmd.MarkFlagRequired("old")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	count, err := v.ReplaceAll(text.Str(replaceOld), text.Str(replaceNew))
	if err != nil {
		printError("replacing", err)
		return err
	}

	logger.Debug("replaced pattern", log.Int("count", count))
	fmt.Println(v.String())
	return nil
}
