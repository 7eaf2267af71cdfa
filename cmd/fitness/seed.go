package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import foods and exercises from a YAML catalog",
	Long: `Reads a catalog such as

  foods:
    - name: Oatmeal
      calories: 150
  exercises:
    - name: Running
      calories_burned: 600

and upserts every entry by name.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	svc, st, err := openServices()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.QueryTimeout)
	defer cancel()

	res, err := svc.Catalog.Import(ctx, f)
	if err != nil {
		return err
	}
	logger.Info("catalog imported", zap.String("file", seedFile), zap.Int("foods", res.Foods), zap.Int("exercises", res.Exercises))
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d foods and %d exercises\n", res.Foods, res.Exercises)
	return nil
}
