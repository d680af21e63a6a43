package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/views"
)

var (
	productName     string
	productCategory string
	productPrice    string
	productDesc     string
	productQty      int
	productImageURL string
	productYes      bool
)

// productsCmd groups the catalog operations
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with search, sort and pagination",
	Long: `List the products still on sale.

Sort keys: nameAsc, nameDesc, priceAsc, priceDesc.

Examples:
  storectl products list
  storectl products list --search "ao thun" --sort priceDesc
  storectl products list --page 2 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListProducts(cmd.Context())
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		page, current := derivePage(items, views.Products(), listSearch, listSort, listPage)
		if jsonOutput {
			return printJSON(page.Items)
		}

		if page.Total == 0 {
			output.Warning("No products match")
			return nil
		}

		w := newTable("CODE", "NAME", "CATEGORY", "PRICE", "STOCK")
		for _, p := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.Code, p.Name, p.Category, p.SalePrice, p.StockQuantity)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printFooter(current, page.TotalPages, page.Total)
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a product to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		price, err := decimal.NewFromString(productPrice)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", productPrice, err)
		}

		draft := form.ProductDraft{
			Name:        productName,
			Category:    productCategory,
			SalePrice:   price,
			Description: productDesc,
			Quantity:    productQty,
			ImageURL:    productImageURL,
		}
		if err := draft.Validate(); err != nil {
			return err
		}

		created, err := client.CreateProduct(cmd.Context(), draft.Request())
		if err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		output.Success("Created product %s (%s)", created.Code, created.Name)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		existing, err := client.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Start from the server's copy; flags override individual fields.
		draft := form.ProductDraftFrom(*existing)
		if cmd.Flags().Changed("name") {
			draft.Name = productName
		}
		if cmd.Flags().Changed("category") {
			draft.Category = productCategory
		}
		if cmd.Flags().Changed("price") {
			price, err := decimal.NewFromString(productPrice)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", productPrice, err)
			}
			draft.SalePrice = price
		}
		if cmd.Flags().Changed("description") {
			draft.Description = productDesc
		}
		if cmd.Flags().Changed("stock") {
			draft.Quantity = productQty
		}
		if cmd.Flags().Changed("image-url") {
			draft.ImageURL = productImageURL
		}
		if err := draft.Validate(); err != nil {
			return err
		}

		updated, err := client.UpdateProduct(cmd.Context(), args[0], draft.Request())
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		output.Success("Updated product %s", updated.Code)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		if !productYes {
			return fmt.Errorf("refusing to delete %s without --yes", args[0])
		}
		if err := client.DeleteProduct(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		output.Success("Deleted product %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)

	addListFlags(productsListCmd)

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productCategory, "category", "", "Category")
		c.Flags().StringVar(&productPrice, "price", "", "Sale price")
		c.Flags().StringVar(&productDesc, "description", "", "Description")
		c.Flags().IntVar(&productQty, "stock", 0, "Stock quantity")
		c.Flags().StringVar(&productImageURL, "image-url", "", "Image URL")
	}
	_ = productsCreateCmd.MarkFlagRequired("name")
	_ = productsCreateCmd.MarkFlagRequired("category")
	_ = productsCreateCmd.MarkFlagRequired("price")

	productsDeleteCmd.Flags().BoolVarP(&productYes, "yes", "y", false, "Skip the confirmation")
}
