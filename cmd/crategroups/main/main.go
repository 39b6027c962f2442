package main

import (
	"fmt"
	"os"

	"github.com/crategroups/crategroups/cmd/crategroups"
)

func main() {
	rootCmd := crategroups.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
