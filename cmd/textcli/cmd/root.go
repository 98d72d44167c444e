package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/htiek/text/core/config"
	"github.com/htiek/text/core/log"
	"github.com/htiek/text/text"
)

var (
	cfgFile string
	verbose bool

	logger *log.Logger
	cfg    *config.Config

	headingStyle = lipgloss.NewStyle().Bold(true)
	tokenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var rootCmd = &cobra.Command{
	Use:   "textcli",
	Short: "Command line front end for the text library",
	Long: `textcli exposes the text library on the command line.

Commands:
  encode   - URL encode text
  decode   - URL decode text
  case     - convert text to upper or lower case
  trim     - strip surrounding whitespace
  split    - split text on a separator
  join     - join arguments with a separator
  replace  - replace every occurrence of a pattern
  convert  - parse text into a typed value
  hash     - print the 64-bit content hash`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/textcli.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	defaults := map[string]interface{}{
		"log.level":  "info",
		"log.format": "text",
	}

	path := cfgFile
	if path == "" {
		path = "./configs/textcli.toml"
	}
	loaded, err := config.Load(path, config.LoadOptions{
		EnvPrefix: "TEXTCLI",
		Defaults:  defaults,
	})
	if err != nil {
		// A missing default config is fine; an explicit one must load
		if cfgFile != "" {
			printError("loading config", err)
			return err
		}
		loaded = config.New(defaults)
	}
	cfg = loaded

	level, err := log.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		format = log.FormatText
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "textcli",
	}).WithCorrelationID(uuid.NewString())

	logger.Debug("configuration loaded",
		log.String("config", cfg.FilePath()),
		log.String("level", level.String()))
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("error: %s: %v", msg, err)))
}

// inputValue reads the operand from the arguments or, when absent, from stdin
func inputValue(args []string) (text.Value, error) {
	if len(args) > 0 {
		return text.FromString(args[0]), nil
	}
	v := text.FromString("")
	if _, err := v.AppendFrom(os.Stdin); err != nil {
		return text.Value{}, err
	}
	// Trailing newline from interactive input is never part of the operand
	if v.EndsWith(text.Char('\n')) {
		if err := v.RemoveN(v.Len()-1, 1); err != nil {
			return text.Value{}, err
		}
	}
	return v, nil
}
