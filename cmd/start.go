package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bookstore/docs/swagger"
)

// @title Bookstore API
// @version 1.0
// @description Catalog, cart, checkout, wishlist, reviews and admin API of the bookstore.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bookstore server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.logger.Sync()
		zap.ReplaceGlobals(rt.logger)

		if !rt.cfg.Server.IsValidEnvironment() {
			rt.logger.Warn("Unknown environment", zap.String("environment", rt.cfg.Server.Environment))
		}

		client := rt.openStorage(cmd.Context())

		app, err := newApp(rt.cfg, rt.logger, rt.db, client)
		if err != nil {
			rt.logger.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			rt.logger.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.String("environment", rt.cfg.Server.Environment))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				rt.logger.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		rt.logger.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
