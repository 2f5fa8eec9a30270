package main

import (
	"os"

	"shiftdial/cmd/shiftdial/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
