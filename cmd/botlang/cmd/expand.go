package cmd

import (
	"github.com/cwbudde/go-botlang/internal/macro"
	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [file]",
	Short: "Parse a Botlang source file and print the macro-expanded AST",
	Long: `Read Botlang source, run it through the define-syntax-rule macro
expander, and print the resulting AST with kr/pretty. Does not evaluate
the program.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	forms, err := parser.Parse(source, filename)
	if err != nil {
		return err
	}

	expanded, err := macro.NewExpander().ExpandProgram(forms)
	if err != nil {
		return err
	}

	pretty.Println(expanded)
	return nil
}
