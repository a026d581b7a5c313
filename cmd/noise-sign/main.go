package main

import (
	"os"

	"github.com/perlin-network/sign/cmd/noise-sign/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
