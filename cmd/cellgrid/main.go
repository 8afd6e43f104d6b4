// Package main provides the cellgrid CLI: load delimited text or xlsx
// worksheets, inspect and aggregate them, and write them back out.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/output"
)

var (
	separator string
	noHeader  bool
	noTrim    bool
	xlsxSheet string

	pageSize  int
	pageIndex int

	statsColumn string

	outSeparator string
	outNoHeader  bool
	insertRows   []string
	asJSON       bool
	pretty       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cellgrid",
		Short: "Inspect and transform delimited tabular data",
		Long: `cellgrid loads delimited text files (or xlsx worksheets) into a typed
in-memory table, runs filters and column statistics over it, and writes
the result back out as delimited text or JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&separator, "sep", ",", "Field separator (single character)")
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false, "Treat the first row as data, generating col0, col1, ... names")
	rootCmd.PersistentFlags().BoolVar(&noTrim, "no-trim", false, "Keep surrounding whitespace on fields")
	rootCmd.PersistentFlags().StringVar(&xlsxSheet, "xlsx-sheet", "", "Worksheet name for xlsx input (default: first sheet)")

	showCmd := &cobra.Command{
		Use:   "show [input]",
		Short: "Render the table on the console",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&pageSize, "page-size", 0, "Rows per page (0 = whole table)")
	showCmd.Flags().IntVar(&pageIndex, "page", 0, "Zero-based page index")

	describeCmd := &cobra.Command{
		Use:   "describe [input]",
		Short: "Summarize the table: head, tail, dimensions, column kinds",
		Args:  cobra.ExactArgs(1),
		RunE:  runDescribe,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Aggregate one column: mean, min, max, median, variance, mode",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVarP(&statsColumn, "column", "c", "", "Column to aggregate")
	_ = statsCmd.MarkFlagRequired("column")

	convertCmd := &cobra.Command{
		Use:   "convert [input] [out.csv]",
		Short: "Re-serialize the table as delimited text or JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&outSeparator, "out-sep", ",", "Output field separator")
	convertCmd.Flags().BoolVar(&outNoHeader, "no-out-header", false, "Omit the header line from the output")
	convertCmd.Flags().StringArrayVar(&insertRows, "insert", nil, "Delimited row to append before writing (repeatable)")
	convertCmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON to stdout instead of delimited text")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(showCmd, describeCmd, statsCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadOptions() (cellgrid.Options, error) {
	opts := cellgrid.DefaultOptions()
	sep := []rune(separator)
	if len(sep) != 1 {
		return opts, fmt.Errorf("separator must be a single character, got %q", separator)
	}
	opts.Separator = sep[0]
	if noHeader {
		opts.Header = boolPtr(false)
	}
	if noTrim {
		opts.TrimFields = boolPtr(false)
	}
	return opts, nil
}

// loadInput reads csv or xlsx input depending on the file extension and
// reports skipped or padded rows on stderr.
func loadInput(path string) (*models.Sheet, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}

	var sheet *models.Sheet
	var issues []cellgrid.RowIssue
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		sheet, issues, err = cellgrid.LoadExcel(path, xlsxSheet, opts)
	} else {
		sheet, issues, err = cellgrid.Load(path, opts)
	}
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "warning: line %d: %s (%d fields)\n", issue.Line, issue.Reason, issue.Fields)
	}
	return sheet, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	sheet, err := loadInput(args[0])
	if err != nil {
		return err
	}
	if pageSize > 0 {
		output.RenderPage(cmd.OutOrStdout(), sheet, pageSize, pageIndex)
		return nil
	}
	output.RenderTable(cmd.OutOrStdout(), sheet)
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	sheet, err := loadInput(args[0])
	if err != nil {
		return err
	}
	output.Describe(cmd.OutOrStdout(), sheet)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	sheet, err := loadInput(args[0])
	if err != nil {
		return err
	}
	col, ok := sheet.Column(statsColumn)
	if !ok {
		return fmt.Errorf("unknown column %q", statsColumn)
	}

	w := cmd.OutOrStdout()
	mode, count, err := sheet.Mode(statsColumn)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "column:   %s (%s)\n", col.Name, col.Kind)
	fmt.Fprintf(w, "mode:     %s (x%d)\n", mode, count)

	if !col.Kind.Numeric() {
		return nil
	}
	for _, stat := range []struct {
		name string
		fn   func(string) (float64, error)
	}{
		{"mean", sheet.Mean},
		{"min", sheet.Min},
		{"max", sheet.Max},
		{"median", sheet.Median},
		{"variance", sheet.Variance},
	} {
		v, err := stat.fn(statsColumn)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-9s %g\n", stat.name+":", v)
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	sheet, err := loadInput(args[0])
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	for _, row := range insertRows {
		if err := cellgrid.InsertRow(sheet, row, opts); err != nil {
			return fmt.Errorf("insert %q: %w", row, err)
		}
	}

	if asJSON {
		data, err := output.ToJSON(sheet, pretty)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	outSep := []rune(outSeparator)
	if len(outSep) != 1 {
		return fmt.Errorf("output separator must be a single character, got %q", outSeparator)
	}
	exportOpts := cellgrid.ExportOptions{Separator: outSep[0]}
	if outNoHeader {
		exportOpts.Header = boolPtr(false)
	}
	if len(args) == 2 {
		return cellgrid.Export(sheet, args[1], exportOpts)
	}
	return cellgrid.Write(cmd.OutOrStdout(), sheet, exportOpts)
}

func boolPtr(b bool) *bool {
	return &b
}
