package main

import (
	"os"

	"github.com/avgate/avgate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
