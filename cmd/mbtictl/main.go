package main

import (
	"os"

	"github.com/dalemusser/mbticards/cmd/mbtictl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
