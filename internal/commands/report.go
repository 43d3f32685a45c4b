package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/aoiro/internal/assets"
	"github.com/cleared-dev/aoiro/internal/depreciation"
	"github.com/cleared-dev/aoiro/internal/filing"
	"github.com/cleared-dev/aoiro/internal/model"
	"github.com/cleared-dev/aoiro/internal/report"
)

// reportInput is what every report reads before rendering.
type reportInput struct {
	b       *books
	year    int
	entries []model.JournalEntry
}

// reportFunc renders one report as CSV.
type reportFunc func(w io.Writer, in reportInput, args []string) error

// writeAndClose runs write against wc and closes it, reporting the first of
// the write and close errors.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing export: %w", cerr)
	}
	return err
}

func newReportCommand(open opener) *cobra.Command {
	var yearFlag, outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export financial reports as CSV",
	}
	cmd.PersistentFlags().StringVar(&yearFlag, "year", "", "fiscal year (default: configured or current year)")
	cmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	sub := func(use, short string, args cobra.PositionalArgs, run reportFunc) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := open()
				if err != nil {
					return err
				}
				year := b.year(yearFlag)
				entries, err := b.journal.ReadYear(year)
				if err != nil {
					return err
				}
				slog.Debug("generating report", "report", cmd.Name(), "year", year, "entries", len(entries))

				in := reportInput{b: b, year: year, entries: entries}
				if outPath == "" {
					return run(cmd.OutOrStdout(), in, args)
				}
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				return writeAndClose(f, func(w io.Writer) error { return run(w, in, args) })
			},
		}
	}

	var opening int64
	ledger := sub("ledger <code>", "General ledger of one account", cobra.ExactArgs(1),
		func(w io.Writer, in reportInput, args []string) error {
			r, err := report.GeneralLedger(in.entries, in.b.chart.All(), args[0], opening, in.year)
			if err != nil {
				return err
			}
			return report.WriteGeneralLedgerCSV(w, r)
		})
	ledger.Flags().Int64Var(&opening, "opening", 0, "opening balance")

	cmd.AddCommand(
		sub("trial-balance", "Trial balance grouped by account type", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				r := report.TrialBalance(in.entries, in.b.chart.All(), in.year)
				if !r.IsBalanced {
					slog.Warn("trial balance does not balance", "debit", r.TotalDebit, "credit", r.TotalCredit)
				}
				return report.WriteTrialBalanceCSV(w, r)
			}),
		ledger,
		sub("pl", "Profit and loss statement", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				return report.WriteProfitAndLossCSV(w, report.ProfitAndLoss(in.entries, in.b.chart.All(), in.year))
			}),
		sub("bs", "Balance sheet", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				accts := in.b.chart.All()
				pl := report.ProfitAndLoss(in.entries, accts, in.year)
				r := report.BalanceSheet(in.entries, accts, in.year, pl.NetIncome)
				if !r.Balanced() {
					slog.Warn("balance sheet does not balance",
						"assets", r.TotalAssets, "liabilities", r.TotalLiabilities, "equity", r.TotalEquity)
				}
				return report.WriteBalanceSheetCSV(w, r)
			}),
		sub("tax", "Consumption tax summary", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				return report.WriteConsumptionTaxCSV(w, report.ConsumptionTax(in.entries, in.year))
			}),
		sub("depreciation", "Depreciation schedule", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				reg, err := assets.Load(in.b.root)
				if err != nil {
					return err
				}
				return depreciation.WriteCSV(w, depreciation.Build(reg.All(), in.year))
			}),
		sub("summary", "Monthly sales and purchases", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				return filing.WriteSummaryCSV(w, filing.Summarize(in.entries, in.b.chart.All(), in.year))
			}),
		sub("filing", "Blue-return financial statement (all four pages)", cobra.NoArgs,
			func(w io.Writer, in reportInput, _ []string) error {
				reg, err := assets.Load(in.b.root)
				if err != nil {
					return err
				}
				cfg := in.b.cfg
				doc := filing.Compose(filing.Input{
					FiscalYear:          in.year,
					BusinessName:        cfg.Business.Name,
					OwnerName:           cfg.Business.Owner,
					Entries:             in.entries,
					Accounts:            in.b.chart.All(),
					Assets:              reg.All(),
					BlueReturnDeduction: cfg.Filing.BlueReturnDeduction,
				})
				return filing.WriteCSV(w, doc)
			}),
	)
	return cmd
}
