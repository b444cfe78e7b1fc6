package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	joplin "github.com/peteraglen/joplin-go-client"
)

var (
	configPath string
	token      string
	verbose    bool
	fields     []string
	orderBy    string
	orderDir   string

	settings joplin.Settings
	logger   zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "joplin",
	Short: "Query and edit notes through the Joplin Data API",
	Long: `joplin is a small client for the REST API served by the Joplin desktop
application. Settings come from an optional YAML file and JOPLIN_* environment
variables; the API token from --token or JOPLIN_TOKEN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}

		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).
			With().
			Timestamp().
			Logger()

		var err error
		settings, err = joplin.LoadSettings(configPath)
		if err != nil {
			return err
		}

		logger.Debug().Str("base_url", settings.BaseURL()).Msg("settings loaded")

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("JOPLIN_TOKEN"), "API token; asks Joplin for one when empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Fields to return, comma separated")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "Field to order by")
	cmd.Flags().StringVar(&orderDir, "order-dir", "", "Order direction, ASC or DESC")
}

func listOptions() joplin.ListOptions {
	return joplin.ListOptions{
		Fields:   fields,
		OrderBy:  orderBy,
		OrderDir: orderDir,
		Debug:    verbose,
	}
}

// connect builds a client and authenticates it. Without a token Joplin shows
// an authorization prompt and the call blocks until it is answered.
func connect(ctx context.Context) (*joplin.Client, error) {
	c := joplin.New(settings,
		joplin.WithAPIKey(token),
		joplin.WithRequestLogger(joplin.NewZerologLogger(logger)),
	)

	if token == "" {
		logger.Info().Msg("waiting for authorization in Joplin")
	}

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func item(c *joplin.Client, name string) (*joplin.Item, error) {
	return c.Item(name)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
