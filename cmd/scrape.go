package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Aziroshin/scraper/internal/dynamo"
	"github.com/Aziroshin/scraper/internal/fetcher"
	"github.com/Aziroshin/scraper/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape all (or selected) country sources and write their records",
	Long: `Scrape national border-crossing sources and upsert one record per country.

By default every registered source runs. Use --sources to restrict the batch,
and --test-suffix to write under suffixed keys that never collide with
production items.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sources, err := cmd.Flags().GetString("sources")
		if err != nil {
			return err
		}
		testSuffix, err := cmd.Flags().GetString("test-suffix")
		if err != nil {
			return err
		}
		concurrency, err := cmd.Flags().GetInt("concurrency")
		if err != nil {
			return err
		}
		if concurrency == 0 {
			concurrency = cfg.Scrape.Concurrency
		}

		client, err := dynamo.NewClient(ctx, cfg.Dynamo.Region, cfg.Dynamo.Endpoint)
		if err != nil {
			return err
		}
		store := dynamo.NewWriter(client, cfg.Dynamo.Table)

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:  cfg.Fetch.UserAgent,
			Timeout:    cfg.Fetch.Timeout(),
			MaxRetries: cfg.Fetch.MaxRetries,
		})

		engine := scraper.NewEngine(f, store, scraper.DefaultRegistry(), concurrency)

		opts := scraper.RunOpts{TestSuffix: testSuffix}
		if sources != "" {
			opts.Sources = strings.Split(sources, ",")
		}

		zap.L().Info("starting scrape",
			zap.Strings("sources", opts.Sources),
			zap.String("test_suffix", opts.TestSuffix),
			zap.Int("concurrency", concurrency),
		)

		summary, err := engine.Run(ctx, opts)
		if err != nil {
			return eris.Wrap(err, "scrape")
		}
		if summary.Failed > 0 {
			return eris.Errorf("scrape: %d of %d countries failed", summary.Failed, summary.Failed+summary.Written)
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().String("sources", "", "comma-separated source names (e.g., hungary-hu,poland-pl)")
	scrapeCmd.Flags().String("test-suffix", "", "suffix appended to every storage key, isolates test runs")
	scrapeCmd.Flags().Int("concurrency", 0, "max parallel country pipelines (default from config)")
	rootCmd.AddCommand(scrapeCmd)
}
