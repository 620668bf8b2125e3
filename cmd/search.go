// file: cmd/search.go
// version: 1.0.0
// guid: 4519d4ad-6e83-4376-920c-c419efcde9b6

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jdfalk/course-group-finder/internal/render"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [course codes...]",
	Short: "Rank groups by how many of the given courses they offer",
	Long: `Rank every group in the catalog by the share of the requested courses it
offers. Courses may be given as arguments, as a comma separated --courses
list, or both:

  course-group-finder search CS101 CS102
  course-group-finder search --courses "cs101, cs102" --matrix`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("courses", "", "comma separated list of course codes")
	searchCmd.Flags().Bool("matrix", false, "show which group offers which course")
	searchCmd.Flags().Bool("matching-only", false, "hide groups that match none of the courses")
	searchCmd.Flags().Bool("chart", false, "draw the match ratios as a bar chart")
}

// searchInput joins positional codes and the --courses list into one
// comma separated string.
func searchInput(args []string, courses string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, args...)
	if courses != "" {
		parts = append(parts, courses)
	}
	return strings.Join(parts, ",")
}

func runSearch(cmd *cobra.Command, args []string) error {
	courses, _ := cmd.Flags().GetString("courses")
	input := searchInput(args, courses)

	f, snap, err := loadFinder(cmd)
	if err != nil {
		return err
	}
	res, err := f.Search(input)
	if err != nil {
		return err
	}
	if res.Query.Empty() {
		return errors.New("no course codes given; pass them as arguments or with --courses")
	}

	out := cmd.OutOrStdout()
	for _, code := range res.Query {
		if !snap.Catalog.Knows(code) {
			fmt.Fprintln(cmd.ErrOrStderr(), render.Warning(fmt.Sprintf("%s is not offered by any group", code)))
		}
	}

	if res.Results.AllZero() {
		fmt.Fprintln(out, render.Warning(render.NoMatches))
		return nil
	}

	results := res.Results
	if matchingOnly, _ := cmd.Flags().GetBool("matching-only"); matchingOnly {
		results = results.MatchingOnly()
	}

	fmt.Fprintln(out, render.Heading(fmt.Sprintf("Search results for %s (sorted by match ratio)", res.Query)))
	fmt.Fprintln(out, render.Results(results, len(res.Query)))

	if chart, _ := cmd.Flags().GetBool("chart"); chart {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.BarChart(results, render.DefaultBarWidth))
	}

	if showMatrix, _ := cmd.Flags().GetBool("matrix"); showMatrix {
		m, err := f.Matrix(input)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Heading("Course presence by group"))
		fmt.Fprintln(out, render.Matrix(m.Matrix))
	}
	return nil
}
