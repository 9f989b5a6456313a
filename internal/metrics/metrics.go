// Package metrics registers the scraper's Prometheus counters. They
// are served on /metrics in serve mode and are inert in one-shot runs.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GamesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brefstats_games_processed_total",
		Help: "Total number of box score pages successfully processed.",
	})
	PlayerLinesInserted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brefstats_player_lines_inserted_total",
		Help: "Total number of player stat lines written to the database.",
	})
	AwardsInserted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brefstats_awards_inserted_total",
		Help: "Total number of award records written, by award table.",
	}, []string{"award"})
	FetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brefstats_fetch_errors_total",
		Help: "Total number of page fetches that failed after retries.",
	})
)

func init() {
	prometheus.MustRegister(GamesProcessed, PlayerLinesInserted, AwardsInserted, FetchErrors)
}
