package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/cwbudde/go-botlang/internal/sexpr"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Botlang source file and print its S-expression forms",
	Long: `Read Botlang source from a file, or stdin if no file is given, and
print each top-level form back out in canonical S-expression syntax.
No macro expansion is performed; use "botlang expand" for that.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func readSource(args []string) (source, filename string, err error) {
	if len(args) == 1 {
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(data), filename, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

func runParse(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	forms, err := parser.Parse(source, filename)
	if err != nil {
		return err
	}

	for _, n := range forms {
		fmt.Println(sexpr.String(n.RawSExpr()))
	}
	return nil
}
