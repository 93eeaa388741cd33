package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clauf",
		Short: "A front end for a small C subset",
	}

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newLexCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
