package main

import (
	"os"

	"catalog-cli/internal/cli"
	"catalog-cli/internal/ui"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
