package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openjudge/arbiter/internal/api"
)

// NewValidateCmd creates the validate command: schema-check a request file
// without executing anything.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate <request.json>",
		Short:   "Validate a request file against the API schema",
		Example: `  arbiter validate request.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read request file: %w", err)
			}

			if err := api.ValidateRequest(body); err != nil {
				return err
			}

			fmt.Printf("%s is valid\n", args[0])
			return nil
		},
	}
	return cmd
}
