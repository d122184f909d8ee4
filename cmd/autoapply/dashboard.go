package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fadilmartias/linkedin-autoapply/internal/config"
	"github.com/fadilmartias/linkedin-autoapply/internal/domain/fiber/handler"
	"github.com/fadilmartias/linkedin-autoapply/internal/middleware"
	"github.com/fadilmartias/linkedin-autoapply/internal/repository"
	"github.com/fadilmartias/linkedin-autoapply/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve a read-only view of recorded applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := dashboardReader(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		app := newDashboardApp(usecase.NewDashboardUsecase(reader), cfg.Dashboard)

		log.Println("Dashboard running on ", cfg.Dashboard.Port)
		return app.Listen(cfg.Dashboard.Port)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardReader reads from Postgres when it is configured and reachable,
// else from the tracker workbook.
func dashboardReader(ctx context.Context, c *config.Config) (usecase.ApplicationReader, error) {
	if c.Database.Enabled() {
		db, err := ConnectDB(c.Database)
		if err == nil {
			return repository.NewApplicationRepository(db), nil
		}
		log.Printf("⚠ postgres unavailable, reading %s: %v", c.Tracker.ExcelPath, err)
	}
	sheet, err := repository.NewSheetRepository(c.Tracker.ExcelPath)
	if err != nil {
		return nil, fmt.Errorf("open tracker: %w", err)
	}
	return sheet, nil
}

func newDashboardApp(uc *usecase.DashboardUsecase, dc config.DashboardConfig) *fiber.App {
	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(healthcheck.New())
	app.Use(middleware.RateLimiter(dc.RateLimit))

	api := app.Group("/api")
	if dc.Password != "" {
		api.Use(basicauth.New(basicauth.Config{
			Users: map[string]string{dc.Username: dc.Password},
			Realm: "autoapply",
		}))
	} else {
		log.Println("⚠ DASHBOARD_PASSWORD not set, dashboard is unprotected")
	}
	handler.NewDashboardHandler(uc).RegisterRoutes(api)
	return app
}
