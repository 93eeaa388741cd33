package main

import (
	"fmt"
	"os"

	"github.com/clauf-lang/clauf/internal/compiler"
	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("clauf")

func newCompileCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Parse a source file and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			return runCompile(args[0])
		},
	}
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	return cmd
}

func runCompile(fileName string) error {
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	log.Infof("compiling %s (%d bytes)", fileName, len(fileData))

	eh := compiler_errors.NewErrorHandler(os.Stderr)
	tree := compiler.Compile(fileName, fileData, eh)
	if tree == nil {
		eh.PrintErrors()
		os.Exit(1)
	}

	log.Infof("compiled %s: %d function(s), %d node(s)",
		fileName, len(tree.Root().Funcs), tree.Arena.NodeCount())

	fmt.Printf("%s: ok\n", fileName)
	return nil
}
