package main

import (
	"os"

	"github.com/tanvi/linguify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
