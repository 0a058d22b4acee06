package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"sialkot-shop/internal/catalog"
	"sialkot-shop/internal/config"
	"sialkot-shop/internal/database"
	"sialkot-shop/internal/repository"

	"github.com/spf13/cobra"
)

func (c *cli) productsCmd() *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			products, closeRepo, err := c.productRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			all, err := products.List(ctx)
			if err != nil {
				return err
			}
			filtered := catalog.Filter(all, category, search)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tREVIEWS")
			for _, p := range filtered {
				price := p.Price
				if price == "" {
					price = "N/A"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, price, len(p.Reviews))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", catalog.AllCategories, "Only list products in this category")
	cmd.Flags().StringVar(&search, "search", "", "Only list products whose name contains this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print products as JSON")

	return cmd
}

// productRepository opens the configured catalog. The in-memory catalog
// only ever holds the sample products.
func (c *cli) productRepository(ctx context.Context) (repository.ProductRepository, func(), error) {
	if c.cfg.Server.CatalogBackend != config.BackendPostgres {
		products := repository.NewMemoryProductRepository()
		if err := repository.Seed(ctx, products, repository.NewMemoryCategoryRepository()); err != nil {
			return nil, nil, err
		}
		return products, func() {}, nil
	}

	db, err := database.New(c.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewProductRepository(db.DB()), func() { db.Close() }, nil
}
