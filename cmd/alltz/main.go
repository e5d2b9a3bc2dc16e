package main

import (
	"os"

	"github.com/alltz-dev/alltz/cmd/alltz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
