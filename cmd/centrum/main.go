// centrum is a keyboard-driven application launcher for the terminal.
package main

import (
	"os"

	"github.com/nhath/centrum/cmd/centrum/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
