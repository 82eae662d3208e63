package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rssreader/internal/app"
	"rssreader/internal/config"
)

var (
	cfgFile string
	jsonOut bool
	limit   int
)

// rootCmd represents the base command: one URL in, feed lines out.
var rootCmd = &cobra.Command{
	Use:   "rssreader URL",
	Short: "Command-line RSS reader",
	Long: `rssreader fetches an RSS 2.0 feed and prints its channel metadata and news
items as readable text lines or as a single JSON document.

Example usage:
  rssreader https://news.example.com/rss            # text output
  rssreader --json https://news.example.com/rss     # JSON output
  rssreader --limit 5 https://news.example.com/rss  # first 5 items only`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		opts := app.Options{JSON: jsonOut}
		if cmd.Flags().Changed("limit") {
			n := limit
			opts.Limit = &n
		}
		lines, err := application.Run(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
		return nil
	},
}

// loadConfig reads the config file. An explicitly given --config path must
// exist; the default path is optional and falls back to built-in defaults.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultPath); err != nil {
			return config.New(), nil
		}
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is config.json)")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "print result as JSON in stdout")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "limit news topics if this parameter provided")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
