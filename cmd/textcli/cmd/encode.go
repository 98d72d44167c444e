package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htiek/text/core/log"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "URL encode text",
	Long: `URL encodes the argument, or standard input when no argument is given.

Letters, digits, and the characters - _ . ~ * pass through, a space
becomes '+', and every other byte becomes a %XX escape.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "URL decode text",
	Long: `URL decodes the argument, or standard input when no argument is given.

Malformed escapes and bytes the encoder would not produce are rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	encoded := v.URLEncoded()
	logger.Debug("encoded input", log.Int("bytes_in", v.Len()), log.Int("bytes_out", encoded.Len()))
	fmt.Println(encoded.String())
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	decoded, err := v.URLDecoded()
	if err != nil {
		printError("decoding", err)
		return err
	}
	fmt.Println(decoded.String())
	return nil
}
