package main

import (
	"fmt"
	"os"

	"github.com/clauf-lang/clauf/internal/compiler_errors"
	"github.com/clauf-lang/clauf/internal/lexer"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(args[0])
		},
	}
}

func runLex(fileName string) error {
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	eh := compiler_errors.NewErrorHandler(os.Stderr)
	defer func() {
		if r := recover(); r != nil {
			if r != compiler_errors.ErrFailNow {
				panic(r)
			}
			eh.PrintErrors()
			os.Exit(1)
		}
	}()

	for _, token := range lexer.NewLexer(fileName, fileData, eh).Tokenize() {
		fmt.Println(token.String())
	}
	return nil
}
