// file: cmd/suggest.go
// version: 1.0.0
// guid: 98ba89b0-14a6-4626-83d6-9dbb87c0187c

package cmd

import (
	"fmt"

	"github.com/jdfalk/course-group-finder/internal/render"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial code>",
	Short: "Suggest known course codes for a partial or misspelled code",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().Int("limit", 10, "maximum number of suggestions")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	f, _, err := loadFinder(cmd)
	if err != nil {
		return err
	}
	codes, err := f.Suggest(args[0], limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(codes) == 0 {
		fmt.Fprintln(out, render.Warning(fmt.Sprintf("No courses resemble %q.", args[0])))
		return nil
	}
	for _, code := range codes {
		fmt.Fprintln(out, code)
	}
	return nil
}
