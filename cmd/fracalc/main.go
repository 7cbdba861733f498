package main

import (
	"fmt"
	"os"

	"github.com/msto63/fracalc/cmd/fracalc/cmd"
	"github.com/msto63/fracalc/internal/engine"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", engine.DisplayMessage(err))
		os.Exit(1)
	}
}
