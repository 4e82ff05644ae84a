package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"item-translator/feature/item"
	"item-translator/feature/item/legacy"
	"item-translator/feature/item/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertPreserve bool
	convertSNBT     bool
)

// convertCmd converts one item read from a file or stdin.
var convertCmd = &cobra.Command{
	Use:   "convert [item.json]",
	Short: "Convert a structured item to its legacy tag",
	Long: `Reads a JSON item ({"id":..,"count":..,"components":[..]}) from the
given file, or from stdin when the argument is "-" or missing, and prints
the legacy tag as JSON or SNBT.

Examples:
  convert sword.json
  convert --snbt --preserve sword.json
  cat sword.json | convert -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertPreserve, "preserve", false, "Keep values without a legacy equivalent in the backup tag")
	convertCmd.Flags().BoolVar(&convertSNBT, "snbt", false, "Print the tag as SNBT instead of JSON")
	RootCmd.AddCommand(convertCmd)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := loadCommandEnv()
	if err != nil {
		return err
	}
	defer l.Sync()

	raw, err := readInput(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to read item: %w", err)
	}

	provider, err := openProvider(ctx, cfg, l)
	if err != nil {
		return err
	}

	preserve := convertPreserve || cfg.Converter.PreserveInconvertibleData
	svc, err := item.NewService(provider.Tables(), legacy.Options{PreserveInconvertibleData: preserve}, l, 1)
	if err != nil {
		return err
	}

	res, err := svc.Translate(ctx, raw)
	if err != nil {
		return err
	}
	if res.Lossy {
		l.Warn("Some components have no legacy equivalent and were kept in the backup tag",
			zap.String("key", legacy.BackupTagKey))
	}
	return writeResult(cmd.OutOrStdout(), res, convertSNBT)
}

// writeResult prints the legacy tag as SNBT or indented JSON.
func writeResult(w io.Writer, res *models.TranslationResult, snbt bool) error {
	if snbt {
		_, err := fmt.Fprintln(w, res.SNBT)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Tag)
}
