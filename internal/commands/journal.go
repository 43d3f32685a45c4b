package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/aoiro/internal/journal"
	"github.com/cleared-dev/aoiro/internal/model"
)

const dateLayout = "2006-01-02"

func newJournalCommand(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Record and list journal entries",
	}
	cmd.AddCommand(
		newJournalAddCommand(open),
		newJournalCopyCommand(open),
		newJournalListCommand(open),
	)
	return cmd
}

// parseLine reads CODE:AMOUNT[:TAX[:MEMO]]. A missing tax category defaults
// to the account's.
func parseLine(b *books, side model.Side, arg string) (model.JournalLine, error) {
	parts := strings.SplitN(arg, ":", 4)
	if len(parts) < 2 {
		return model.JournalLine{}, fmt.Errorf("line %q: want CODE:AMOUNT[:TAX[:MEMO]]", arg)
	}
	amount, err := strconv.ParseInt(strings.ReplaceAll(parts[1], ",", ""), 10, 64)
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("line %q: parsing amount: %w", arg, err)
	}

	line := model.JournalLine{Side: side, AccountCode: parts[0], Amount: amount}
	acct, known := b.chart.Get(line.AccountCode)
	if !known {
		slog.Warn("account not in chart", "code", line.AccountCode)
	}
	if len(parts) > 2 && parts[2] != "" {
		line.TaxCategory = model.TaxCategory(parts[2])
		if !line.TaxCategory.Valid() {
			return model.JournalLine{}, fmt.Errorf("line %q: unknown tax category %q", arg, parts[2])
		}
	} else if known {
		line.TaxCategory = acct.DefaultTaxCategory
	}
	if len(parts) > 3 {
		line.Memo = parts[3]
	}
	return line, nil
}

func newJournalAddCommand(open opener) *cobra.Command {
	var (
		dateStr, vendor, description, evidence string
		debits, credits, files                 []string
		ratio                                  int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a journal entry",
		Example: `  aoiro journal add --date 2024-05-10 --vendor 大家 --desc 5月分家賃 \
    --debit 5017:100000 --credit 1002:100000 --ratio 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			date, err := time.Parse(dateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}

			var lines []model.JournalLine
			for _, arg := range debits {
				l, err := parseLine(b, model.SideDebit, arg)
				if err != nil {
					return err
				}
				lines = append(lines, l)
			}
			for _, arg := range credits {
				l, err := parseLine(b, model.SideCredit, arg)
				if err != nil {
					return err
				}
				lines = append(lines, l)
			}

			if cmd.Flags().Changed("ratio") {
				if ratio < 1 || ratio > 99 {
					return fmt.Errorf("--ratio must be between 1 and 99, got %d", ratio)
				}
				var n int
				lines, n = journal.Apportion(lines, 0, ratio)
				if n == 0 {
					return fmt.Errorf("--ratio applies to the first --debit line")
				}
			}

			switch model.EvidenceStatus(evidence) {
			case "", model.EvidenceNone, model.EvidencePaper, model.EvidenceDigital:
			default:
				return fmt.Errorf("unknown evidence status %q", evidence)
			}

			params := journal.AddParams{
				Date:           date,
				Lines:          lines,
				Vendor:         vendor,
				Description:    description,
				EvidenceStatus: model.EvidenceStatus(evidence),
			}
			for _, f := range files {
				params.Evidence = append(params.Evidence, model.Evidence{FileName: f})
			}
			if len(files) > 0 && params.EvidenceStatus == "" {
				params.EvidenceStatus = model.EvidenceDigital
			}

			entry, err := b.journal.Add(params)
			if err != nil {
				return err
			}
			b.commit(cmd.Context(), fmt.Sprintf("journal: %s %s", entry.ID, entry.Description), monthFile(date))
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(dateLayout), "entry date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line CODE:AMOUNT[:TAX[:MEMO]] (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line CODE:AMOUNT[:TAX[:MEMO]] (repeatable)")
	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&evidence, "evidence", "", "evidence status: none, paper, digital")
	cmd.Flags().StringArrayVar(&files, "file", nil, "attached evidence file name (repeatable)")
	cmd.Flags().IntVar(&ratio, "ratio", 0, "business ratio for the first debit line; the rest goes to 事業主貸")
	return cmd
}

func newJournalCopyCommand(open opener) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "copy <entry-id>",
		Short: "Record a new entry using an existing one as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			date, err := time.Parse(dateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}
			src, err := b.journal.Get(args[0])
			if err != nil {
				return err
			}

			entry, err := b.journal.Add(journal.AddParams{
				Date:        date,
				Lines:       journal.TemplateLines(src),
				Vendor:      src.Vendor,
				Description: src.Description,
			})
			if err != nil {
				return err
			}
			b.commit(cmd.Context(), fmt.Sprintf("journal: %s copied from %s", entry.ID, src.ID), monthFile(date))
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format(dateLayout), "date of the new entry (YYYY-MM-DD)")
	return cmd
}

func newJournalListCommand(open opener) *cobra.Command {
	var yearFlag string
	var month int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			year := b.year(yearFlag)

			var entries []model.JournalEntry
			if month > 0 {
				entries, err = b.journal.ReadMonth(year, month)
			} else {
				entries, err = b.journal.ReadYear(year)
			}
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().StringVar(&yearFlag, "year", "", "fiscal year")
	cmd.Flags().IntVar(&month, "month", 0, "only this month (1-12)")
	return cmd
}

func printEntries(w io.Writer, entries []model.JournalEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSIDE\tACCOUNT\tAMOUNT\tTAX\tVENDOR\tDESCRIPTION")
	for _, e := range entries {
		for i, l := range e.Lines {
			id, date, vendor, desc := "", "", "", ""
			if i == 0 {
				id, date, vendor, desc = e.ID, e.Date.Format(dateLayout), e.Vendor, e.Description
			}
			account := l.AccountCode
			if orig, ratio, ok := l.Apportionment.Split(); ok {
				account = fmt.Sprintf("%s (%d%% of %d)", account, ratio, orig)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
				id, date, l.Side, account, l.Amount, l.TaxCategory, vendor, desc)
		}
	}
	return tw.Flush()
}

func monthFile(date time.Time) string {
	return fmt.Sprintf("%04d/%02d/journal.csv", date.Year(), int(date.Month()))
}
