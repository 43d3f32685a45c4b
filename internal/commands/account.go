package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/aoiro/internal/model"
)

const chartFile = "accounts/chart-of-accounts.csv"

func newAccountCommand(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(
		newAccountListCommand(open),
		newAccountAddCommand(open),
		newAccountRenameCommand(open),
		newAccountDeleteCommand(open),
	)
	return cmd
}

func newAccountListCommand(open opener) *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			accts := b.chart.All()
			if accountType != "" {
				t := model.AccountType(accountType)
				if !t.Valid() {
					return fmt.Errorf("unknown account type %q", accountType)
				}
				accts = b.chart.ByType(t)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tTYPE\tTAX\tRATIO\tSYSTEM")
			for _, a := range accts {
				ratio := ""
				if a.BusinessRatio > 0 {
					ratio = fmt.Sprintf("%d%%", a.BusinessRatio)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
					a.Code, a.Name, a.Type, a.DefaultTaxCategory, ratio, a.IsSystem())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "", "only list accounts of this type")
	return cmd
}

func newAccountAddCommand(open opener) *cobra.Command {
	var accountType, tax string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a user account with the next free code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			t := model.AccountType(accountType)
			if !t.Valid() {
				return fmt.Errorf("unknown account type %q", accountType)
			}
			acct, err := b.chart.Add(args[0], t, model.TaxCategory(tax))
			if err != nil {
				return err
			}
			if err := b.chart.Save(b.root); err != nil {
				return err
			}
			b.commit(cmd.Context(), fmt.Sprintf("account: add %s %s", acct.Code, acct.Name), chartFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", acct.Code, acct.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&accountType, "type", "", "account type: asset, liability, equity, revenue, expense (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVar(&tax, "tax", "", "default tax category")
	return cmd
}

func newAccountRenameCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <code> <name>",
		Short: "Rename a user account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			if err := b.chart.Rename(args[0], args[1]); err != nil {
				return err
			}
			if err := b.chart.Save(b.root); err != nil {
				return err
			}
			b.commit(cmd.Context(), fmt.Sprintf("account: rename %s to %s", args[0], args[1]), chartFile)
			return nil
		},
	}
}

func newAccountDeleteCommand(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := open()
			if err != nil {
				return err
			}
			if err := b.chart.Delete(args[0]); err != nil {
				return err
			}
			if err := b.chart.Save(b.root); err != nil {
				return err
			}
			b.commit(cmd.Context(), "account: delete "+args[0], chartFile)
			return nil
		},
	}
}
