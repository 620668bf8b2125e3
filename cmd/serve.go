// file: cmd/serve.go
// version: 1.0.0
// guid: 4c33414d-8883-4966-97bd-aa8ec4dacd63

package cmd

import (
	"log"

	"github.com/jdfalk/course-group-finder/internal/config"
	"github.com/jdfalk/course-group-finder/internal/realtime"
	"github.com/jdfalk/course-group-finder/internal/server"
	"github.com/jdfalk/course-group-finder/internal/server/middleware"
	"github.com/jdfalk/course-group-finder/internal/watcher"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API serving course lists, rankings, presence matrices and
suggestions. With --watch the catalog file is reloaded whenever it changes
and connected event stream clients are notified.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "localhost", "host to bind")
	serveCmd.Flags().String("port", "8080", "port to listen on")
	serveCmd.Flags().Bool("watch", true, "reload the catalog when the file changes")
}

// serverConfig maps application settings onto the HTTP server.
func serverConfig(cfg config.Config) server.ServerConfig {
	return server.ServerConfig{
		Host:               cfg.Host,
		Port:               cfg.Port,
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		IdleTimeout:        cfg.IdleTimeout,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		RateLimitBurst:     cfg.RateLimitBurst,
		MaxBodyBytes:       middleware.DefaultBodyLimit,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.AppConfig

	f, _, err := loadFinder(cmd)
	if err != nil {
		return err
	}

	if cfg.Watch {
		w := watcher.New(func(path string) {
			log.Printf("[INFO] Catalog %s changed, reloading", path)
			// Reload logs and publishes its own outcome.
			_, _ = f.Reload()
		}, cfg.WatchDebounce)
		if err := w.Start(cfg.CatalogPath); err != nil {
			log.Printf("[WARN] Catalog watching disabled: %v", err)
		} else {
			defer w.Stop()
		}
	}

	scfg := serverConfig(cfg)
	srv := server.NewServer(f, realtime.NewEventHub(), scfg)
	return srv.Start(scfg)
}
