package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/aoiro/internal/assets"
	"github.com/cleared-dev/aoiro/internal/model"
)

const assetsFile = "assets/fixed-assets.csv"

func newAssetCommand(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage the fixed-asset register",
	}
	cmd.AddCommand(
		newAssetAddCommand(open),
		newAssetListCommand(open),
		newAssetDisposeCommand(open),
	)
	return cmd
}

func newAssetAddCommand(open opener) *cobra.Command {
	var (
		p                        assets.AddParams
		dateStr, method, rateStr string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a fixed asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			reg, err := assets.Load(b.root)
			if err != nil {
				return err
			}

			p.Name = args[0]
			p.Method = model.DepreciationMethod(method)
			if p.AcquisitionDate, err = time.Parse(dateLayout, dateStr); err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}
			if rateStr != "" {
				if p.Rate, err = decimal.NewFromString(rateStr); err != nil {
					return fmt.Errorf("parsing --rate: %w", err)
				}
			}

			a, err := reg.Add(p)
			if err != nil {
				return err
			}
			if err := reg.Save(b.root); err != nil {
				return err
			}
			b.commit(cmd.Context(), "asset: add "+a.Name, assetsFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s)\n", a.Name, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "acquisition date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().Int64Var(&p.AcquisitionCost, "cost", 0, "acquisition cost in yen (required)")
	_ = cmd.MarkFlagRequired("cost")
	cmd.Flags().IntVar(&p.UsefulLife, "life", 0, "useful life in years (required)")
	_ = cmd.MarkFlagRequired("life")
	cmd.Flags().StringVar(&method, "method", string(model.MethodStraightLine), "straight_line or declining_balance")
	cmd.Flags().StringVar(&rateStr, "rate", "", "depreciation rate; defaults to the statutory rate for the life")
	cmd.Flags().IntVar(&p.BusinessRatio, "ratio", 100, "business-use percentage")
	cmd.Flags().StringVar(&p.Category, "category", "", "asset category")
	return cmd
}

func newAssetListCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			reg, err := assets.Load(b.root)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tACQUIRED\tCOST\tLIFE\tMETHOD\tRATIO\tSTATUS")
			for _, a := range reg.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%d%%\t%s\n",
					a.ID, a.Name, a.AcquisitionDate.Format(dateLayout), a.AcquisitionCost,
					a.UsefulLife, a.Method, a.BusinessRatio, a.Status)
			}
			return tw.Flush()
		},
	}
}

func newAssetDisposeCommand(open opener) *cobra.Command {
	var dateStr string
	var sold bool

	cmd := &cobra.Command{
		Use:   "dispose <id>",
		Short: "Mark an asset disposed or sold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			reg, err := assets.Load(b.root)
			if err != nil {
				return err
			}
			date, err := time.Parse(dateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date: %w", err)
			}
			status := model.AssetDisposed
			if sold {
				status = model.AssetSold
			}
			if err := reg.Dispose(args[0], status, date); err != nil {
				return err
			}
			if err := reg.Save(b.root); err != nil {
				return err
			}
			b.commit(cmd.Context(), fmt.Sprintf("asset: %s %s", status, args[0]), assetsFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "disposal date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().BoolVar(&sold, "sold", false, "the asset was sold rather than scrapped")
	return cmd
}
