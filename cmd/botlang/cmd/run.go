package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-botlang/internal/boterr"
	"github.com/cwbudde/go-botlang/internal/config"
	"github.com/cwbudde/go-botlang/internal/eval"
	"github.com/cwbudde/go-botlang/internal/macro"
	"github.com/cwbudde/go-botlang/internal/parser"
	"github.com/cwbudde/go-botlang/internal/primitives"
	"github.com/cwbudde/go-botlang/internal/runtime"
	"github.com/cwbudde/go-botlang/internal/session"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	evalExpr  string
	dumpAST   bool
	dumpValue bool
	sessionID string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Botlang program",
	Long: `Execute a Botlang program from a file or inline expression.

Examples:
  # Run a script file
  botlang run greeter.bot

  # Evaluate an inline expression
  botlang run -e "(+ 1 2)"

  # Resume a conversation suspended at a prior bot-result
  botlang run --session alice conversation.bot`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the macro-expanded AST before evaluating (for debugging)")
	runCmd.Flags().BoolVar(&dumpValue, "dump-value", false, "pretty-print the final value instead of its surface form")
	runCmd.Flags().StringVar(&sessionID, "session", "", "conversation id to load/save suspended state under")
}

func loadConfig() *config.Config {
	if configPath == "" {
		return config.Default()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError("%v", err)
	}
	return cfg
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	cfg := loadConfig()
	cfg.Apply()

	forms, err := parser.Parse(input, filename)
	if err != nil {
		return err
	}

	expanded, err := macro.NewExpander().ExpandProgram(forms)
	if err != nil {
		return err
	}

	if dumpAST {
		fmt.Println("AST:")
		pretty.Println(expanded)
		fmt.Println()
	}

	var state *runtime.ExecutionState
	var store *session.Store
	if sessionID != "" {
		if err := os.MkdirAll(cfg.SessionDir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory %s: %w", cfg.SessionDir, err)
		}
		store = session.NewStore(cfg.SessionDir)
		state, err = store.LoadState(sessionID)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "resuming session %q at bot-node step %d\n", sessionID, state.BotNodeSteps)
		}
	}

	env := runtime.NewEnvironment()
	primitives.Install(env)

	ev := eval.NewEvaluator(state)

	var result runtime.Value = runtime.Nil
	for _, n := range expanded {
		result, err = ev.Eval(n, env)
		if err != nil {
			if evalErr, ok := err.(*boterr.EvaluationError); ok {
				fmt.Fprintln(os.Stderr, evalErr.Format(true))
				return fmt.Errorf("evaluation failed")
			}
			return err
		}
	}

	if br, ok := result.(*runtime.BotResultValue); ok {
		if store != nil {
			if err := store.SaveState(sessionID, br.State); err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "suspended session %q at bot-node step %d\n", sessionID, br.State.BotNodeSteps)
			}
		}
		fmt.Println(br.Message.String())
		return nil
	}

	if dumpValue {
		pretty.Println(result)
		return nil
	}
	fmt.Println(result.String())
	return nil
}
