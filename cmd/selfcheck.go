package cmd

import (
	"context"

	"item-translator/core/mappings"
	"item-translator/feature/integrity/checks"
	"item-translator/feature/item/legacy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var selfcheckMappings bool

// selfcheckCmd verifies that every component kind has a converter.
var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Verify the converter covers every component kind",
	Long: `Builds the legacy converter and fails when any component kind has no
registered rule. With --mappings the configured mapping source is loaded too.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := loadCommandEnv()
		if err != nil {
			return err
		}
		defer l.Sync()

		var source mappings.Source = mappings.NewBuilder("selfcheck").Build()
		if selfcheckMappings {
			p, err := openProvider(context.Background(), cfg, l)
			if err != nil {
				return err
			}
			source = p
			report := checks.CheckMappings(p.Tables())
			if report.Status != "ok" {
				l.Warn("Mapping tables incomplete",
					zap.Strings("empty_domains", report.EmptyDomains),
					zap.Int("item_remaps", report.ItemRemaps),
					zap.Bool("anchor_known", report.AnchorKnown),
				)
			}
		}

		cv := legacy.New(source, legacy.Options{PreserveInconvertibleData: cfg.Converter.PreserveInconvertibleData})
		if err := cv.Validate(); err != nil {
			return err
		}
		l.Info("Converter registry complete")
		return nil
	},
}

func init() {
	selfcheckCmd.Flags().BoolVar(&selfcheckMappings, "mappings", false, "Also load the configured mapping source")
	RootCmd.AddCommand(selfcheckCmd)
}
