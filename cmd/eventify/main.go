package main

import (
	"os"

	"github.com/eventify-app/eventify/cmd/eventify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
