package main

import (
	"fmt"
	"os"

	"github.com/openjudge/arbiter/cmd/arbiter/commands"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "arbiter",
	Short: "Arbiter code-judging service",
	Long: `
  ╔═╗╦═╗╔╗ ╦╔╦╗╔═╗╦═╗
  ╠═╣╠╦╝╠╩╗║ ║ ║╣ ╠╦╝
  ╩ ╩╩╚═╚═╝╩ ╩ ╚═╝╩╚═
  Multi-Language Code Judge

  Arbiter compiles and runs user submissions against test cases inside
  resource-capped, network-less sandbox containers, one verdict per request.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

func init() {
	rootCmd.SetVersionTemplate("arbiter version {{.Version}}\n")

	rootCmd.PersistentFlags().StringP("config", "c", "arbiter.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringP("output", "o", "auto", "Output format: auto, json, text")

	rootCmd.AddCommand(commands.NewServeCmd())
	rootCmd.AddCommand(commands.NewJudgeCmd())
	rootCmd.AddCommand(commands.NewValidateCmd())
	rootCmd.AddCommand(commands.NewLanguagesCmd())
	rootCmd.AddCommand(commands.NewCleanCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
