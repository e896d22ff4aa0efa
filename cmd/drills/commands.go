package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"blogful/internal/domain/entity"
	"blogful/internal/fixtures"
	hshopping "blogful/internal/handler/http/shopping"
	"blogful/internal/infra/db"
	shopUC "blogful/internal/usecase/shopping"
)

func newMigrateCmd(a *app) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the blogful_articles and shopping_list tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if down {
				if err := db.MigrateDown(cmd.Context(), a.db); err != nil {
					return err
				}
				cmd.Println("tables dropped")
				return nil
			}
			if err := db.MigrateUp(cmd.Context(), a.db, a.driver); err != nil {
				return err
			}
			cmd.Println("tables ready")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "drop the tables instead")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the fixture articles and shopping items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := fixtures.Seed(cmd.Context(), a.handle)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if err := db.SyncSequences(cmd.Context(), a.db, a.driver); err != nil {
				return err
			}
			cmd.Printf("seeded %d rows\n", n)
			return nil
		},
	}
}

func newTruncateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "truncate [table...]",
		Short: "Delete every row and restart ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Truncate(cmd.Context(), a.db, a.driver, args...); err != nil {
				return err
			}
			cmd.Println("truncated")
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "List items whose name contains term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.items.SearchByName(cmd.Context(), a.handle, args[0])
			if err != nil {
				return err
			}
			return a.printItems(cmd, list)
		},
	}
}

func newPageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "page <n>",
		Short: fmt.Sprintf("Show page n of the list, %d items per page", shopUC.ItemsPerPage),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid page %q", args[0])
			}
			p, err := a.items.Paginate(cmd.Context(), a.handle, n)
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(cmd, hshopping.PageDTO{Items: hshopping.ToDTOs(p.Items), Pagination: p.Pagination})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d items)\n", p.Pagination.Page, p.Pagination.TotalPages, p.Pagination.Total)
			return a.printItems(cmd, p.Items)
		},
	}
}

func newAddedBeforeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "added-before <days>",
		Short: "List items added more than days ago",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil || days < 0 {
				return fmt.Errorf("invalid days %q", args[0])
			}
			list, err := a.items.AddedBefore(cmd.Context(), a.handle, days)
			if err != nil {
				return err
			}
			return a.printItems(cmd, list)
		},
	}
}

func newCategoryTotalsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category-totals",
		Short: "Sum item prices per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			totals, err := a.items.CategoryTotals(cmd.Context(), a.handle)
			if err != nil {
				return err
			}
			if a.json {
				return a.printJSON(cmd, totals)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tTOTAL")
			for _, t := range totals {
				fmt.Fprintf(tw, "%s\t%s\n", t.Category, t.Total)
			}
			return tw.Flush()
		},
	}
}

func (a *app) printItems(cmd *cobra.Command, list []entity.ShoppingItem) error {
	if a.json {
		return a.printJSON(cmd, hshopping.ToDTOs(list))
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No items found.")
		return nil
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCATEGORY\tADDED\tCHECKED")
	for _, it := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n",
			it.ID, it.Name, it.Price, it.Category, it.DateAdded.Format("2006-01-02"), it.Checked)
	}
	return tw.Flush()
}
