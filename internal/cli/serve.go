package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as a daemon scraping the previous day on a schedule",
		Long: `Keeps the database current: on each cron trigger the previous
day's games are scraped. Health and Prometheus metrics are exposed
over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			if schedule == "" {
				schedule = a.cfg.CronSchedule
			}

			c := cron.New()
			_, err = c.AddFunc(schedule, func() {
				day := time.Now().UTC().AddDate(0, 0, -1)
				games, players := a.scrapeDay(context.Background(), day)
				a.log.Info("scheduled scrape finished",
					zap.String("date", day.Format(dateLayout)),
					zap.Int("games", games),
					zap.Int("player_lines", players))
			})
			if err != nil {
				return fmt.Errorf("registering cron schedule %q: %w", schedule, err)
			}
			c.Start()
			defer c.Stop()

			a.log.Info("daemon started",
				zap.String("schedule", schedule),
				zap.String("port", a.cfg.HTTPPort))

			gin.SetMode(gin.ReleaseMode)
			router := gin.New()
			router.Use(gin.Recovery())
			router.GET("/healthz", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})
			router.GET("/metrics", gin.WrapH(promhttp.Handler()))

			return router.Run(":" + a.cfg.HTTPPort)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron schedule for the daily scrape (default from CRON_SCHEDULE)")

	return cmd
}
