package main

import (
	"os"

	"github.com/htiek/text/cmd/textcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
