package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"item-translator/core/config"
	"item-translator/core/loader"
	"item-translator/core/logger"
	"item-translator/core/middleware/auth"
	"item-translator/core/middleware/rayid"
	"item-translator/core/storage"
	"item-translator/feature/integrity"
	"item-translator/feature/item"
	"item-translator/feature/item/legacy"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the translation server",
	Long:  `Loads the mapping tables, validates the converter registry and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		provider, err := openProvider(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to load mappings", zap.Error(err))
		}
		logg = logg.With(zap.String("pair", provider.Tables().Pair()))

		if interval := cfg.Mappings.RefreshInterval(); interval > 0 {
			go provider.Watch(ctx, interval)
			logg.Info("Mapping refresh enabled", zap.Duration("interval", interval))
		}

		svc, err := item.NewService(provider, legacy.Options{
			PreserveInconvertibleData: cfg.Converter.PreserveInconvertibleData,
		}, logg, cfg.Converter.CacheSize)
		if err != nil {
			logg.Fatal("Failed to initialize item service", zap.Error(err))
		}

		integrityOpts := integrity.Options{
			Bucket: cfg.Storage.Bucket,
			Object: cfg.Mappings.Object,
		}
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage unavailable, storage checks disabled", zap.Error(err))
		} else {
			integrityOpts.Client = client
		}
		if cfg.Database.Enabled {
			if db, err := openDatabase(cfg, false); err != nil {
				logg.Warn("Database unavailable, schema checks disabled", zap.Error(err))
			} else {
				integrityOpts.DB = db
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(item.NewFeature(svc))
		mgr.Register(integrity.NewFeature(integrity.NewService(svc.Converter(), provider, integrityOpts, logg)))

		// RayID must run first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
