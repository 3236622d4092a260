// Package main provides the CLI entry point for xgrid-go.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xgrid-go/pkg/xgrid"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/output"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/overlay"
	"go.uber.org/zap"
)

var (
	outputPath  string
	pretty      bool
	overlayPath string
	mergeCols   []int
	sheetsDir   string
	parallel    bool
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xgrid",
		Short: "Convert Excel workbooks to and from spreadsheet widget JSON",
		Long: `xgrid-go converts xlsx workbooks into the JSON grid model of a browser
spreadsheet widget (cells, styles, merges, sizes) and rebuilds workbooks
from that JSON.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	convertCmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert a workbook to grid JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	convertCmd.Flags().StringVar(&overlayPath, "overlay", "", "YAML file with per-sheet overlay values")
	convertCmd.Flags().IntSliceVar(&mergeCols, "merge-cols", nil, "0-based columns to auto-merge (e.g. 0,2)")
	convertCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	convertCmd.Flags().BoolVar(&parallel, "parallel", false, "Convert sheets concurrently")

	exportCmd := &cobra.Command{
		Use:   "export [input.json|-]",
		Short: "Rebuild a workbook from grid JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path")
	exportCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd, exportCmd)
	return rootCmd
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	opts := xgrid.DefaultOptions()
	opts.MergeColumns = mergeCols
	opts.Parallel = parallel
	opts.Logger = log

	if overlayPath != "" {
		overlays, err := overlay.Load(overlayPath)
		if err != nil {
			return fmt.Errorf("failed to load overlays: %w", err)
		}
		opts.Overlays = overlays
	}

	wb, err := xgrid.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	log.Debug("conversion finished", zap.String("input", inputPath), zap.Int("sheets", len(wb.Data)))
	return nil
}

func writeSheetFiles(wb *models.WorkbookView, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Data {
		sheet := &wb.Data[i]
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	sheets, err := output.DecodeSheets(in)
	if err != nil {
		return fmt.Errorf("failed to read grid data: %w", err)
	}

	if err := xgrid.ExportFile(sheets, outputPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	log.Debug("export finished", zap.String("output", outputPath), zap.Int("sheets", len(sheets)))
	return nil
}
