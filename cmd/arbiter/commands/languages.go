package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openjudge/arbiter/internal/lang"
)

// NewLanguagesCmd creates the languages command.
func NewLanguagesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := lang.Supported()
			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(map[string][]string{"languages": tags})
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print as JSON")
	return cmd
}
