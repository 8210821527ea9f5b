package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"driverpay/internal/domain/payroll"
	"driverpay/internal/report"
)

func computeCmd(c *cli) *cobra.Command {
	var (
		driver string
		salary float64
		format string
		out    string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "compute FILE",
		Short: "Compute the salary breakdown for one driver",
		Example: `  driverpay compute mars.xlsx --driver MOUSSA --salary 150000
  driverpay compute mars.xlsx --driver PATHE --salary 150000 --format pdf --out pathe.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case payroll.FormatText, payroll.FormatJSON, payroll.FormatCSV, payroll.FormatPDF:
			default:
				return fmt.Errorf("unknown format %q (want text, json, csv or pdf)", format)
			}
			if format == payroll.FormatPDF && out == "" {
				return fmt.Errorf("--out is required for pdf output")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open timesheet: %w", err)
			}
			defer f.Close()

			res, err := c.service().Compute(cmd.Context(), payroll.Request{
				File:     f,
				Filename: filepath.Base(args[0]),
				Driver:   driver,
				Salary:   salary,
				Options:  payroll.Options{StrictOvertime: strict},
			})
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := render(&buf, res, format); err != nil {
				return err
			}
			if out == "" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (Batmach %s, Minhala %s)\n", out,
				report.Money(res.Breakdown.MidweekFinalSalary, res.Currency),
				report.Money(res.Breakdown.WeekendFinalSalary, res.Currency))
			return nil
		},
	}

	cmd.Flags().StringVarP(&driver, "driver", "d", "", "driver name, used to pick the workbook sheet")
	cmd.Flags().Float64VarP(&salary, "salary", "s", 0, "total salary for the month")
	cmd.Flags().StringVarP(&format, "format", "f", payroll.FormatText, "output format (text, json, csv, pdf)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the output to a file instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict-overtime", false, "fail when the timesheet records no HS hours")
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}

func render(w io.Writer, res payroll.Result, format string) error {
	switch format {
	case payroll.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case payroll.FormatCSV:
		return report.CSV(w, res)
	case payroll.FormatPDF:
		return report.PDF(w, res, time.Now())
	default:
		_, err := fmt.Fprintln(w, report.Text(res))
		return err
	}
}
