package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"spending/internal/core"
	"spending/internal/store"
)

// NewMonthlyCmd prints the breakdown of one month, or of every month of a
// year with --all
func NewMonthlyCmd(app *App) *cobra.Command {
	var (
		year  int
		month string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show monthly totals and category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			if year == 0 {
				year = app.now().Year()
			}

			out := cmd.OutOrStdout()
			if all {
				months := s.GetMonthlyData(year)
				if len(months) == 0 {
					fmt.Fprintf(out, "No monthly data for %d\n", year)
					return nil
				}
				for _, m := range months {
					writeMonth(out, m)
				}
				return nil
			}

			available := s.AvailableMonths(year)
			if month == "" {
				if len(available) == 0 {
					fmt.Fprintf(out, "No monthly data for %d\n", year)
					return nil
				}
				month = available[0]
			}

			m, ok := s.MonthSummary(year, monthLabel(month))
			if !ok {
				return fmt.Errorf("no spending recorded for %s %d", month, year)
			}
			writeMonth(out, m)
			if len(available) > 1 {
				fmt.Fprintf(out, "Available months: %s\n", strings.Join(available, ", "))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year, defaults to the current year")
	cmd.Flags().StringVar(&month, "month", "", "month name, defaults to the earliest month with data")
	cmd.Flags().BoolVar(&all, "all", false, "show every month of the year")
	cmd.MarkFlagsMutuallyExclusive("month", "all")
	return cmd
}

// monthLabel normalizes user input such as "march" or "Mar" to the stored
// month label. Unknown names are passed through unchanged.
func monthLabel(name string) string {
	name = strings.TrimSpace(name)
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, name); err == nil {
			return t.Month().String()
		}
	}
	return name
}

func writeMonth(w io.Writer, m core.MonthlyData) {
	fmt.Fprintf(w, "%s %d: ₹%s\n", m.Month, m.Year, m.TotalSpent)
	writeCategoryLines(w, m.Categories)
}

func writeCategoryLines(w io.Writer, cats []core.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range cats {
		if c.TotalSpent.IsZero() {
			continue
		}
		fmt.Fprintf(tw, "  %s %s\t₹%s\n", c.Icon, c.Name, c.TotalSpent)
	}
	tw.Flush()
}

// NewAnalysisCmd prints the yearly overview
func NewAnalysisCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show the yearly overview: total, top category and breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			if year == 0 {
				if years := s.AvailableYears(); len(years) > 0 {
					year = years[0]
				} else {
					year = app.now().Year()
				}
			}

			ov := s.YearSummary(year)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Year %d\n", ov.Year)
			fmt.Fprintf(out, "Total spent: ₹%s\n", ov.TotalSpent)
			if ov.HasTop {
				fmt.Fprintf(out, "Top category: %s %s (₹%s)\n", ov.Top.Category.Icon, ov.Top.Category.Name, ov.Top.Total)
			} else {
				fmt.Fprintln(out, "Top category: None")
			}

			if len(ov.Categories) > 0 {
				fmt.Fprintln(out, "By category:")
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, ct := range ov.Categories {
					fmt.Fprintf(tw, "  %s %s\t₹%s\n", ct.Category.Icon, ct.Category.Name, ct.Total)
				}
				tw.Flush()
			}
			if len(ov.Months) > 0 {
				fmt.Fprintln(out, "By month:")
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, m := range ov.Months {
					fmt.Fprintf(tw, "  %s\t₹%s\n", m.Month, m.TotalSpent)
				}
				tw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year, defaults to the latest year with data")
	return cmd
}

// NewYearsCmd lists years that have data from the current year on
func NewYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List years with recorded expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			years := s.AvailableYears()
			if len(years) == 0 {
				fmt.Fprintln(out, "No expenses yet")
				return nil
			}
			for _, y := range years {
				fmt.Fprintln(out, strconv.Itoa(y))
			}
			return nil
		},
	}
}
