package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spending/internal/core"
	"spending/internal/log"
	"spending/internal/store"
)

// NewCategoryCmd groups the category subcommands
func NewCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage spending categories",
	}
	cmd.AddCommand(newCategoryAddCmd(), newCategoryListCmd(), newCategoryTotalCmd(app))
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	var color, icon string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			var raw string
			if len(args) == 1 {
				raw = args[0]
			}
			existing := s.State().Categories
			name, err := core.ValidateCategoryName(raw, existing)
			if err != nil {
				return errors.New(userMessage(err))
			}

			if color == "" {
				color = core.NextCategoryColor(len(existing))
			}
			if icon == "" {
				icon = core.DefaultCategoryIcon
			}

			c, err := s.AddCategory(cmd.Context(), name, color, icon)
			if err != nil {
				log.FromContext(cmd.Context()).Error("Add category failed", log.FieldCategory, name, log.FieldError, err)
				return errors.New(MsgAddCategoryFailed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Custom category added! %s %s\n", c.Icon, c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "hex color, defaults to the next palette color")
	cmd.Flags().StringVar(&icon, "icon", "", "icon glyph")
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, c := range s.State().Categories {
				fmt.Fprintf(tw, "%s\t%s %s\t%s\n", c.ID, c.Icon, c.Name, c.Color)
			}
			return tw.Flush()
		},
	}
}

func newCategoryTotalCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "total NAME",
		Short: "Show how much was spent in a category during a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			c, ok := s.CategoryByName(args[0])
			if !ok {
				return errors.New(MsgUnknownCategory)
			}
			if year == 0 {
				year = app.now().Year()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s in %d: ₹%s\n", c.Icon, c.Name, year, s.GetCategorySpending(c.ID, year))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year, defaults to the current year")
	return cmd
}
