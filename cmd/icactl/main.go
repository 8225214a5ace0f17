package main

import (
	"os"

	"github.com/cosmos/interchaintxs/cmd/icactl/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
