package main

import (
	"os"

	"advocate-directory/cmd/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
