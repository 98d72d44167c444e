package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	texterror "github.com/htiek/text/core/error"
	"github.com/htiek/text/text"
)

var (
	convertType  string
	convertRadix int
)

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Parse text into a typed value",
	Long: `Parses the argument, or standard input, into the target type and
prints the parsed value. The whole input must parse; nothing is trimmed.

Types: bool, byte, int, int64, uint, uint64, float64

With --radix an integer type is parsed in the given radix (2 to 36);
surrounding whitespace is then ignored and no radix prefix is accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertType, "type", "t", "int", "target type")
	convertCmd.Flags().IntVarP(&convertRadix, "radix", "r", 0, "radix for integer parsing (0 = decimal, strict)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := inputValue(args)
	if err != nil {
		printError("reading input", err)
		return err
	}

	out, err := convertValue(&v)
	if err != nil {
		printError("converting", err)
		return err
	}
	fmt.Println(out)
	return nil
}

func convertValue(v *text.Value) (string, error) {
	if convertRadix != 0 {
		switch convertType {
		case "int":
			n, err := text.ToRadix[int](v, convertRadix)
			return fmt.Sprintf("%d", n), err
		case "int64":
			n, err := text.ToRadix[int64](v, convertRadix)
			return fmt.Sprintf("%d", n), err
		case "uint":
			n, err := text.ToRadix[uint](v, convertRadix)
			return fmt.Sprintf("%d", n), err
		case "uint64":
			n, err := text.ToRadix[uint64](v, convertRadix)
			return fmt.Sprintf("%d", n), err
		default:
			return "", texterror.InvalidArgument("cli.convert", "radix parsing needs an integer type").
				WithDetail("type", convertType)
		}
	}

	switch convertType {
	case "bool":
		b, err := text.To[bool](v)
		return fmt.Sprintf("%t", b), err
	case "byte":
		ch, err := text.To[byte](v)
		return fmt.Sprintf("%d", ch), err
	case "int":
		n, err := text.To[int](v)
		return fmt.Sprintf("%d", n), err
	case "int64":
		n, err := text.To[int64](v)
		return fmt.Sprintf("%d", n), err
	case "uint":
		n, err := text.To[uint](v)
		return fmt.Sprintf("%d", n), err
	case "uint64":
		n, err := text.To[uint64](v)
		return fmt.Sprintf("%d", n), err
	case "float64":
		f, err := text.To[float64](v)
		return fmt.Sprintf("%g", f), err
	default:
		return "", texterror.InvalidArgument("cli.convert", "unknown target type").
			WithDetail("type", convertType)
	}
}
