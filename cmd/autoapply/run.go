package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadilmartias/linkedin-autoapply/internal/browser"
	"github.com/fadilmartias/linkedin-autoapply/internal/linkedin"
	"github.com/fadilmartias/linkedin-autoapply/internal/model"
	"github.com/fadilmartias/linkedin-autoapply/internal/usecase"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	runKeywords []string
	runLocation string
	runLimit    int
	runHeadless bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Log in, search each keyword and apply until the daily limit is reached",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		criteria := model.SearchCriteria{
			Keywords:   cfg.Search.Keywords,
			Location:   cfg.Search.Location,
			DailyLimit: cfg.Search.Limit(),
		}
		if cmd.Flags().Changed("keyword") {
			criteria.Keywords = runKeywords
		}
		if cmd.Flags().Changed("location") {
			criteria.Location = runLocation
		}
		if cmd.Flags().Changed("limit") {
			criteria.DailyLimit = runLimit
		}
		if cmd.Flags().Changed("headless") {
			cfg.Browser.Headless = runHeadless
		}

		runID := uuid.New()
		log.Printf("▶ run %s: %v in %s, limit %d", runID, criteria.Keywords, criteria.Location, criteria.DailyLimit)

		stores, closeStores := liveStores(ctx, cfg)
		defer closeStores()
		recorder := usecase.NewRecorderUsecase(openTracker(cfg.Tracker.ExcelPath), runID, stores...)

		tab, closeTab, err := browser.NewTab(ctx, cfg.Browser)
		if err != nil {
			return err
		}
		defer closeTab()

		timing := linkedin.DefaultTiming()
		timing.ManualLoginWait = cfg.Browser.ManualWait()

		session := linkedin.NewSession(tab, cfg.LinkedIn, timing)
		generator := newGenerator(ctx, cfg)
		iterator := linkedin.NewIterator(tab, newResumeService(cfg, generator), recorder, cfg.Resume.OutputPath, timing)

		summary, err := usecase.NewApplyUsecase(session, iterator, runID).Run(ctx, criteria)
		if err != nil {
			return err
		}
		log.Printf("✓ applied to %d jobs", summary.Applied)
		reportGenerator(generator)
		return nil
	},
}

func init() {
	runCmd.Flags().StringSliceVarP(&runKeywords, "keyword", "k", nil, "Search keyword (repeatable); overrides config")
	runCmd.Flags().StringVarP(&runLocation, "location", "l", "", "Search location; overrides config")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "Daily application limit; overrides config")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "Run Chrome headless")
	rootCmd.AddCommand(runCmd)
}
