package cmd

import (
	"fmt"

	"github.com/cwbudde/go-botlang/internal/primitives"
	"github.com/cwbudde/go-botlang/internal/runtime"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display detailed version information including commit hash, build date, and the installed primitive count.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("botlang version %s\n", Version)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		fmt.Printf("Build Date: %s\n", BuildDate)

		env := runtime.NewEnvironment()
		primitives.Install(env)
		fmt.Printf("Built-in primitives: %d\n", len(env.Names()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
