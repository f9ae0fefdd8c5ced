package main

import (
	"os"

	"github.com/msto63/numtower/cmd/numtower/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
