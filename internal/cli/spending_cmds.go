package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"spending/internal/core"
	"spending/internal/log"
	"spending/internal/store"
)

const dateLayout = "2006-01-02"

// NewAddCmd records a spending
func NewAddCmd(app *App) *cobra.Command {
	var (
		amount      string
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Example: `  spending add --amount 12.50 --category Food --description lunch
  spending add -a 40 -c Travel -d "train ticket" --date 2024-03-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			draft := core.SpendingDraft{
				Amount:      amount,
				Category:    category,
				Description: description,
			}
			if date != "" {
				d, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return errors.New(MsgInvalidDate)
				}
				now := app.now()
				draft.Date = time.Date(d.Year(), d.Month(), d.Day(),
					now.Hour(), now.Minute(), now.Second(), 0, time.Local)
			}

			n, err := draft.Validate(app.now())
			if err != nil {
				return errors.New(userMessage(err))
			}

			rec, err := s.AddSpending(cmd.Context(), n)
			if err != nil {
				log.FromContext(cmd.Context()).Error("Add spending failed", log.FieldError, err)
				return errors.New(MsgAddExpenseFailed)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Expense added successfully! %s ₹%s (%s)\n", rec.Category, rec.Amount, rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount spent, e.g. 12.50")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what it was for")
	cmd.Flags().StringVar(&date, "date", "", "day of the expense (YYYY-MM-DD), defaults to today")

	return cmd
}

// NewDeleteCmd removes a spending by id
func NewDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			id := args[0]

			var target *core.Spending
			for _, rec := range s.State().Spendings {
				if rec.ID == id {
					rec := rec
					target = &rec
					break
				}
			}
			if target == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No expense with id %s\n", id)
				return nil
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete %q? [y/N] ", target.Description)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err := s.DeleteSpending(cmd.Context(), id); err != nil {
				log.FromContext(cmd.Context()).Error("Delete spending failed", log.FieldSpendingID, id, log.FieldError, err)
				return errors.New(MsgDeleteFailed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", target.Description)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// NewHistoryCmd lists spendings, newest first
func NewHistoryCmd(app *App) *cobra.Command {
	var (
		category string
		year     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			var recs []core.Spending
			if category != "" {
				if year == 0 {
					year = app.now().Year()
				}
				recs = s.CategoryExpenses(category, year)
			} else {
				recs = s.History()
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No expenses yet")
				return nil
			}

			icons := make(map[string]string)
			for _, c := range s.State().Categories {
				icons[c.Name] = c.Icon
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION\tID")
			for _, rec := range recs {
				icon := icons[rec.Category]
				if icon == "" {
					icon = core.DefaultCategoryIcon
				}
				fmt.Fprintf(tw, "%s\t%s %s\t₹%s\t%s\t%s\n",
					rec.Date.Local().Format("02 Jan 2006 15:04"), icon, rec.Category, rec.Amount, rec.Description, rec.ID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category")
	cmd.Flags().IntVar(&year, "year", 0, "year to show with --category, defaults to the current year")
	return cmd
}
