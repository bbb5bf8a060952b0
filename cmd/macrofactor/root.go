// ABOUTME: Root Cobra command for macrofactor CLI.
// ABOUTME: Loads settings and the logger in PersistentPreRunE; builds the API client.
package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/harperreed/macrofactor/internal/api"
	"github.com/harperreed/macrofactor/internal/auth"
	"github.com/harperreed/macrofactor/internal/config"
	"github.com/harperreed/macrofactor/internal/food"
	"github.com/harperreed/macrofactor/internal/logs"
	"github.com/harperreed/macrofactor/internal/session"
)

var (
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "macrofactor",
	Short: "CLI for MacroFactor nutrition tracking",
	Long: `Macrofactor is a CLI client for the MacroFactor nutrition-tracking service.

QUICK START:

  $ macrofactor login --email you@example.com --password secret
  $ macrofactor goals                      # Today's targets and TDEE
  $ macrofactor nutrition                  # Today's totals
  $ macrofactor food-log                   # Today's food entries

LOGGING FOOD:

  $ macrofactor log-food --date 2025-06-15 --name "Oatmeal" \
      --calories 300 --protein 10 --carbs 54 --fat 6

  Or search the food database and log by index:

  $ macrofactor search-food "greek yogurt"
  $ macrofactor log-searched-food --date 2025-06-15 --food-index 1 \
      --serving 2 --quantity 1.5

  Search results are cached; log-searched-food reads the most recent search.

OTHER WRITES:

  $ macrofactor log-weight --date 2025-06-15 --weight 82.4 --body-fat 18.2
  $ macrofactor log-nutrition --date 2025-06-15 --calories 1900 \
      --protein 140 --carbs 180 --fat 60
  $ macrofactor delete-food --date 2025-06-15 --entry-id abc123
  $ macrofactor sync-day --date 2025-06-15   # Recompute daily totals

OUTPUT:

  Every command accepts --json for structured output and --verbose for
  request tracing on stderr.

DATA STORAGE:

  The refresh token lives in config.json and the last search results in
  last-search.json, both under $XDG_CONFIG_HOME/macrofactor (or the OS
  equivalent). An optional settings.json in the same directory, or
  MACROFACTOR_* environment variables, can point the client at another
  backend or change the HTTP timeout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load(config.Dir())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		level := cfg.GetLogLevel()
		if verbose {
			level = "debug"
		}
		logger, err = logs.New(level)
		if err != nil {
			return err
		}
		return nil
	},
}

// newClient builds an authenticated API client from the saved credential.
// A missing credential file surfaces as session.ErrNotLoggedIn.
func newClient() (*api.Client, error) {
	cred, err := session.NewStore(config.Dir()).Load()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout()}

	exchanger := auth.NewExchanger(cred)
	exchanger.HTTPClient = httpClient
	exchanger.Logger = logger

	return &api.Client{
		BaseURL:    cfg.BaseURL(),
		HTTPClient: httpClient,
		Tokens:     exchanger,
		Logger:     logger,
	}, nil
}

func newStore() *session.Store {
	return session.NewStore(config.Dir())
}

func newSearchCache() *food.Cache {
	return food.NewCache(config.Dir())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace HTTP requests on stderr")
}
