package main

import (
	"os"

	"github.com/radarpme/radarpme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
