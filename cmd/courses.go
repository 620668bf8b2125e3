// file: cmd/courses.go
// version: 1.0.0
// guid: 051b0910-6dd3-4fcd-a8af-7b3165666255

package cmd

import (
	"fmt"

	"github.com/jdfalk/course-group-finder/internal/config"
	"github.com/jdfalk/course-group-finder/internal/render"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List every course offered by the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCourses,
}

func init() {
	coursesCmd.Flags().Bool("groups", false, "also list each group with its courses")
	coursesCmd.Flags().Int("columns", 0, "number of grid columns (default: grid_columns setting)")
}

func runCourses(cmd *cobra.Command, args []string) error {
	f, snap, err := loadFinder(cmd)
	if err != nil {
		return err
	}
	courses, err := f.Courses()
	if err != nil {
		return err
	}

	columns, _ := cmd.Flags().GetInt("columns")
	if columns < 1 {
		columns = config.AppConfig.GridColumns
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Heading(fmt.Sprintf("Available courses (%d)", len(courses))))
	fmt.Fprintln(out, render.CourseGrid(courses, columns))

	if showGroups, _ := cmd.Flags().GetBool("groups"); showGroups {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Heading(fmt.Sprintf("Groups (%d)", snap.Catalog.Len())))
		fmt.Fprintln(out, render.Groups(snap.Catalog.Groups()))
	}
	return nil
}
