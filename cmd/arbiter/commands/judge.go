package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openjudge/arbiter/internal/config"
	"github.com/openjudge/arbiter/internal/display"
	"github.com/openjudge/arbiter/internal/event"
	"github.com/openjudge/arbiter/internal/judge"
	"github.com/openjudge/arbiter/internal/lang"
	"github.com/openjudge/arbiter/internal/sandbox"
)

// NewJudgeCmd creates the judge command for one-shot CLI judging.
func NewJudgeCmd() *cobra.Command {
	var (
		jsonOutput bool
		showEvents bool
	)

	cmd := &cobra.Command{
		Use:   "judge <request.json>",
		Short: "Judge a single request file",
		Long: `Judge one request from a JSON file and print the verdict.

The file uses the same shape as the API request body: language,
source_code, function_name, and test_cases.`,
		Example: `  arbiter judge request.json
  arbiter judge request.json --json
  arbiter judge request.json --events`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read request file: %w", err)
			}

			var req judge.Request
			if err := json.Unmarshal(body, &req); err != nil {
				return fmt.Errorf("invalid request file: %w", err)
			}

			opts := []judge.Option{}
			if showEvents {
				opts = append(opts, judge.WithEmitter(event.NewHumanReadableEmitter()))
			}

			pipeline := judge.NewPipeline(lang.Config{
				Runner: sandbox.NewRunner(),
				Images: cfg.Images,
				Policy: cfg.Policy(),
			}, opts...)

			resp, err := pipeline.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOutput {
				encoder := json.NewEncoder(os.Stdout)
				return encoder.Encode(resp)
			}
			fmt.Println(display.FormatVerdict(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw response object")
	cmd.Flags().BoolVar(&showEvents, "events", false, "Show lifecycle events while judging")

	return cmd
}
