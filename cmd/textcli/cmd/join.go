package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htiek/text/text"
	"github.com/htiek/text/utils/seqx"
)

var joinSep string

var joinCmd = &cobra.Command{
	Use:   "join part...",
	Short: "Join arguments with a separator",
	Long:  `Joins the arguments into one line with the separator between consecutive parts.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJoin,
}

func init() {
	joinCmd.Flags().StringVarP(&joinSep, "sep", "s", ",", "separator to join with")
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	parts := seqx.Map(args, text.FromString)
	joined := text.Join(parts, text.Str(joinSep))
	fmt.Println(joined.String())
	return nil
}
