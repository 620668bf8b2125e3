// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/jdfalk/course-group-finder/internal/config"
	"github.com/jdfalk/course-group-finder/internal/finder"
	"github.com/jdfalk/course-group-finder/internal/render"
	"github.com/jdfalk/course-group-finder/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "course-group-finder",
	Short: "Find the groups that offer the courses you want",
	Long: `Course Group Finder reads a catalog of groups, each tagged with the
course codes it offers, and ranks the groups by how many of your chosen
courses they cover.

The catalog is a spreadsheet (xlsx), CSV, YAML or JSON file with one row per
group. By default the "GroupName" column names the group and the
"Description (COURSES)" column lists its courses separated by spaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.DefaultConfigName+")")
	rootCmd.PersistentFlags().String("catalog", "CS Groups.xlsx", "catalog file (.xlsx, .csv, .yaml, .json)")
	rootCmd.PersistentFlags().String("sheet", "", "worksheet to read from an xlsx catalog (default: active sheet)")
	rootCmd.PersistentFlags().String("name-column", source.DefaultNameColumn, "header of the group name column")
	rootCmd.PersistentFlags().String("courses-column", source.DefaultCoursesColumn, "header of the course list column")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// bindFlags ties persistent flags to their config keys. It is repeated on
// every initialization so a viper reset does not lose the bindings.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("catalog_path", flags.Lookup("catalog"))
	viper.BindPFlag("sheet", flags.Lookup("sheet"))
	viper.BindPFlag("name_column", flags.Lookup("name-column"))
	viper.BindPFlag("courses_column", flags.Lookup("courses-column"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))

	serveFlags := serveCmd.Flags()
	viper.BindPFlag("host", serveFlags.Lookup("host"))
	viper.BindPFlag("port", serveFlags.Lookup("port"))
	viper.BindPFlag("watch", serveFlags.Lookup("watch"))
}

func initConfig() {
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".course-group-finder")
	}

	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()

	config.InitConfig()
	setupLogging(config.AppConfig.LogLevel)

	switch {
	case readErr == nil:
		log.Printf("[DEBUG] Using config file: %s", viper.ConfigFileUsed())
	case cfgFile != "":
		log.Printf("[WARN] Could not read config file %s: %v", cfgFile, readErr)
	}
}

// loadFinder builds a Finder for the configured catalog and performs the
// initial load. Skipped rows are reported on the command's error stream.
func loadFinder(cmd *cobra.Command) (*finder.Finder, *finder.Snapshot, error) {
	cfg := config.AppConfig
	f := finder.New(
		finder.LoadFunc(source.Loader(cfg.CatalogPath, source.Options{
			Sheet:         cfg.Sheet,
			NameColumn:    cfg.NameColumn,
			CoursesColumn: cfg.CoursesColumn,
		})),
		finder.Options{CacheTTL: cfg.CacheTTL, CacheSize: cfg.CacheSize},
	)

	snap, err := f.Reload()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(snap.Skipped) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), render.Skipped(snap.Skipped))
	}
	return f, snap, nil
}
