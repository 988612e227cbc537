package main

import (
	"fmt"
	"os"

	"github.com/andrei-cloud/cryptoproc/internal/commands/cli"
)

// main builds the CLI and runs it; without arguments it serves stdin/stdout.
func main() {
	rootCmd, err := cli.NewRootCommand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
