package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"item-translator/core/config"
	"item-translator/core/logger"
	"item-translator/core/mappings"
	"item-translator/core/reconcile"
	"item-translator/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diffLeft   string
	diffRight  string
	diffSync   bool
	diffDryRun bool
	yesConfirm bool
	importFrom string
	publishTo  string
)

// mappingsCmd is the parent command for mapping table operations.
var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Inspect, compare, import and publish identifier mapping tables",
}

var mappingsInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a summary of the configured mapping tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadCommandEnv()
		if err != nil {
			return err
		}
		defer l.Sync()

		p, err := openProvider(context.Background(), cfg, l)
		if err != nil {
			return err
		}
		t := p.Tables()
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"pair":               t.Pair(),
			"domains":            t.Sizes(),
			"item_remaps":        t.ItemRemapCount(),
			"enchantment_window": t.EnchantmentWindow(),
		})
	},
}

var mappingsDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two mapping sources",
	Long: `Compares the mapping tables of two sources and reports entries missing
on either side and entries whose values differ.

Examples:
  # Report drift between the mapping document and the database
  mappings diff --left file --right database

  # Overwrite the database set with the document (interactive confirmation)
  mappings diff --left file --right database --sync

  # Same, non-interactive
  mappings diff --left file --right database --sync --yes`,
	RunE: runMappingsDiff,
}

var mappingsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Store mapping tables in the database",
	Long:  `Loads tables from the given source (default: file) and replaces the database set of the same pair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadCommandEnv()
		if err != nil {
			return err
		}
		defer l.Sync()
		ctx := context.Background()

		loader, err := mappingLoader(cfg, importFrom)
		if err != nil {
			return err
		}
		t, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s mappings: %w", importFrom, err)
		}
		db, err := openDatabase(cfg, false)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		n, err := mappings.Import(ctx, db, t)
		if err != nil {
			return err
		}
		l.Info("Mappings imported", zap.String("pair", t.Pair()), zap.Int("rows", n))
		return nil
	},
}

func init() {
	mappingsDiffCmd.Flags().StringVar(&diffLeft, "left", mappings.SourceFile, "Reference source (file, storage, database)")
	mappingsDiffCmd.Flags().StringVar(&diffRight, "right", mappings.SourceDatabase, "Source checked against the reference")
	mappingsDiffCmd.Flags().BoolVar(&diffSync, "sync", false, "Overwrite the right source with the left tables (database only)")
	mappingsDiffCmd.Flags().BoolVar(&diffDryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	mappingsDiffCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	mappingsImportCmd.Flags().StringVar(&importFrom, "from", mappings.SourceFile, "Source to import from (file, storage)")
	mappingsPublishCmd.Flags().StringVar(&importFrom, "from", mappings.SourceFile, "Source to publish from (file, database)")
	mappingsPublishCmd.Flags().StringVar(&publishTo, "object", "", "Object name (defaults to mappings.object)")

	mappingsCmd.AddCommand(mappingsInfoCmd, mappingsDiffCmd, mappingsImportCmd, mappingsPublishCmd)
	RootCmd.AddCommand(mappingsCmd)
}

var mappingsPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload mapping tables to object storage",
	Long: `Loads tables from the given source (default: file) and writes them as a
document to the configured bucket. The extension of --object picks YAML or JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadCommandEnv()
		if err != nil {
			return err
		}
		defer l.Sync()
		ctx := context.Background()

		loader, err := mappingLoader(cfg, importFrom)
		if err != nil {
			return err
		}
		t, err := loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s mappings: %w", importFrom, err)
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}
		object := publishTo
		if object == "" {
			object = cfg.Mappings.Object
		}
		if err := mappings.Publish(ctx, client, cfg.Storage.Bucket, object, t); err != nil {
			return err
		}
		l.Info("Mappings published",
			zap.String("pair", t.Pair()),
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", object),
		)
		return nil
	},
}

func loadCommandEnv() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Mappings.Validate(); err != nil {
		return nil, nil, err
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

func runMappingsDiff(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, l, err := loadCommandEnv()
	if err != nil {
		return err
	}
	defer l.Sync()

	if diffSync && diffRight != mappings.SourceDatabase {
		return fmt.Errorf("--sync only supports the database as the right source")
	}

	left, err := mappingLoader(cfg, diffLeft)
	if err != nil {
		return err
	}
	right, err := mappingLoader(cfg, diffRight)
	if err != nil {
		return err
	}

	spec := &reconcile.Spec{
		Left:  reconcile.Side{Name: diffLeft, Loader: left},
		Right: reconcile.Side{Name: diffRight, Loader: right},
	}

	l.Info("Comparing mapping sources", zap.String("left", diffLeft), zap.String("right", diffRight))
	plan, err := reconcile.ReconcileWithPlan(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to compare mappings: %w", err)
	}
	printDiffReport(l, plan.Report)

	if !diffSync {
		return nil
	}
	if diffDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !plan.NeedsSync {
		l.Info("Sources are in sync, nothing to write.")
		return nil
	}
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	db, err := openDatabase(cfg, false)
	if err != nil {
		return err
	}
	target := reconcile.SyncFunc(func(ctx context.Context, t *mappings.Tables) (int, error) {
		return mappings.Import(ctx, db, t)
	})
	n, err := reconcile.ApplyPlan(ctx, spec, plan, target, reconcile.ReconcileOptions{Confirmed: true})
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	l.Info("Database mappings replaced", zap.Int("rows", n))
	return nil
}

// printDiffReport logs the summary and a sample of differing entries.
func printDiffReport(l *zap.Logger, r *reconcile.Report) {
	s := r.Summary
	l.Info("Mapping diff report",
		zap.String("left_pair", r.LeftPair),
		zap.String("right_pair", r.RightPair),
		zap.Int("total_entries", s.TotalEntries),
		zap.Int("missing_left", s.MissingLeft),
		zap.Int("missing_right", s.MissingRight),
		zap.Int("mismatches", s.Mismatches),
	)

	const maxShow = 10
	shown := 0
	for _, res := range r.Results {
		if res.LeftPresent && res.RightPresent && len(res.Mismatch) == 0 {
			continue
		}
		if shown == maxShow {
			l.Info("Additional differences not shown")
			return
		}
		l.Info("Difference",
			zap.String("domain", res.Domain),
			zap.String("id", res.ID),
			zap.Bool("left", res.LeftPresent),
			zap.Bool("right", res.RightPresent),
			zap.Strings("mismatch", res.Mismatch),
		)
		shown++
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("Type 'yes' to overwrite the database mappings: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
