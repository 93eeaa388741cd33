package main

import (
	"os"

	"github.com/clauf-lang/clauf/internal/compiler"
	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Compile a source file and dump its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(fileName string) error {
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler(os.Stderr)
	tree := compiler.Compile(fileName, fileData, eh)
	if tree == nil {
		eh.PrintErrors()
		os.Exit(1)
	}

	litter.Dump(tree.Root())
	return nil
}
