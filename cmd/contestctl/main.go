package main

import (
	"os"

	"github.com/contestlet/contestlet/cmd/contestctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
