package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"bookstore/feature/integrity"
	"bookstore/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	purgeFlag bool
	jsonFlag  bool
)

// integrityCmd runs every check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database and image storage",
	Long:  `Checks that the database schema matches the models and that book images and storage objects agree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// imagesCmd represents the integrity images command
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Check book images against the storage bucket",
	Long: `Lists image rows whose object is missing and objects under books/ that no image row points at.

Examples:
  # Report only
  integrity images

  # Delete orphan objects
  integrity images --purge

  # Save the full report as JSON
  integrity images --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, imagesCmd)

	imagesCmd.Flags().BoolVar(&purgeFlag, "purge", false, "Delete orphan objects")
	integrityCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Save the detailed report as a JSON file")
}

func runIntegrityChecks(ctx context.Context, runSchema, runImages bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	startTime := time.Now()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	logg := rt.logger

	client := rt.openStorage(ctx)
	if runImages && client == nil {
		return fmt.Errorf("object storage is required for the image check")
	}
	svc := integrity.NewService(rt.db, client, rt.cfg.Storage.Bucket, logg)

	full := map[string]any{}

	if runSchema {
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		full["schema"] = report
		logSchemaReport(logg, report)
	}

	if runImages {
		report, err := svc.CheckImages(ctx, purgeFlag)
		if err != nil {
			return fmt.Errorf("image check failed: %w", err)
		}
		full["images"] = report

		fmt.Println("\n=== Book Image Integrity Metrics ===")
		fmt.Printf("Stored Objects: %d\n", report.Stored)
		fmt.Printf("Referenced Keys: %d\n", report.Referenced)
		fmt.Printf("Missing Objects: %d\n", len(report.Missing))
		fmt.Printf("Orphan Objects: %d\n", len(report.Orphans))
		fmt.Printf("Purged: %t\n", report.Purged)

		for _, key := range report.Missing {
			logg.Warn("Missing object", zap.String("key", key))
		}
	}

	if jsonFlag {
		filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(full, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	logg.Info("Integrity check completed", zap.Duration("execution_time", time.Since(startTime)))
	return nil
}

func logSchemaReport(logg *zap.Logger, report *checks.SchemaReport) {
	if report.Matched {
		logg.Info("Schema matches the models", zap.Int("tables", len(report.Tables)))
		return
	}

	logg.Warn("Schema drift detected")
	for table, tblReport := range report.Tables {
		switch tblReport.Status {
		case checks.StatusMissing:
			logg.Warn("Missing table", zap.String("table", table))
		case checks.StatusError:
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
	}
	for _, e := range report.Errors {
		logg.Error("Inspection Error", zap.String("error", e))
	}
}
