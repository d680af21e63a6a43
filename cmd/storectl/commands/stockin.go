package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/views"
)

var (
	stockinSupplier string
	stockinDate     string
	stockinItems    []string
)

// stockinCmd groups the goods-receipt operations
var stockinCmd = &cobra.Command{
	Use:   "stockin",
	Short: "Manage stock-in (goods receipt) records",
}

var stockinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock-in records with search, sort and pagination",
	Long: `List goods receipts. Search matches record code, employee code and
supplier name.

Sort keys: dateAsc, dateDesc.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListStockIns(cmd.Context())
		if err != nil {
			return fmt.Errorf("list stock-in records: %w", err)
		}

		page, current := derivePage(items, views.StockIns(), listSearch, listSort, listPage)
		if jsonOutput {
			return printJSON(page.Items)
		}

		if page.Total == 0 {
			output.Warning("No stock-in records match")
			return nil
		}

		w := newTable("CODE", "EMPLOYEE", "SUPPLIER", "DATE", "TOTAL")
		for _, s := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Code, s.EmployeeCode, s.Supplier, s.ReceivedAt, s.Total)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printFooter(current, page.TotalPages, page.Total)
		return nil
	},
}

var stockinShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one record with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		rec, err := client.GetStockIn(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get stock-in record: %w", err)
		}

		if jsonOutput {
			return printJSON(rec)
		}

		output.Primary("Receipt %s • %s (%s)", rec.Code, rec.Supplier, rec.ReceivedAt)
		w := newTable("LINE", "PRODUCT", "NAME", "QTY", "UNIT PRICE", "TOTAL")
		for _, l := range rec.Lines {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", l.Code, l.ProductCode, l.ProductName, l.Quantity, l.UnitPrice, l.LineTotal)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		output.Muted("Total %s", rec.Total)
		return nil
	},
}

var stockinCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a goods receipt",
	Long: `Record a goods receipt for the signed-in employee. Items are repeated
--item flags of the form productCode:quantity:unitPrice.

Example:
  storectl stockin create --supplier "Cong Ty ABC" --item P1:50:60000 --item P2:10:90000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		lines, err := parseStockinItems(stockinItems)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("at least one --item is required")
		}
		if stockinSupplier == "" {
			return fmt.Errorf("--supplier is required")
		}

		date := stockinDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		created, err := client.CreateStockIn(cmd.Context(), api.StockInRequest{
			EmployeeCode: user.EmployeeCode,
			Supplier:     stockinSupplier,
			ReceivedAt:   date,
			Lines:        lines,
		})
		if err != nil {
			return fmt.Errorf("create stock-in record: %w", err)
		}
		output.Success("Created receipt %s, total %s", created.Code, created.Total)
		return nil
	},
}

var stockinDeleteLineCmd = &cobra.Command{
	Use:   "delete-line <lineCode>",
	Short: "Remove one line from a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		if err := client.DeleteStockInLine(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete line: %w", err)
		}
		output.Success("Deleted line %s", args[0])
		return nil
	},
}

func parseStockinItems(specs []string) ([]api.StockInLineRequest, error) {
	out := make([]api.StockInLineRequest, 0, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid --item %q, want productCode:quantity:unitPrice", s)
		}
		qty, err := strconv.Atoi(parts[1])
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("invalid quantity in --item %q", s)
		}
		price, err := decimal.NewFromString(parts[2])
		if err != nil || !price.GreaterThan(decimal.Zero) {
			return nil, fmt.Errorf("invalid unit price in --item %q", s)
		}
		out = append(out, api.StockInLineRequest{ProductCode: parts[0], Quantity: qty, UnitPrice: price})
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(stockinCmd)
	stockinCmd.AddCommand(stockinListCmd)
	stockinCmd.AddCommand(stockinShowCmd)
	stockinCmd.AddCommand(stockinCreateCmd)
	stockinCmd.AddCommand(stockinDeleteLineCmd)

	addListFlags(stockinListCmd)

	stockinCreateCmd.Flags().StringVar(&stockinSupplier, "supplier", "", "Supplier name")
	stockinCreateCmd.Flags().StringVar(&stockinDate, "date", "", "Receipt date (YYYY-MM-DD, default today)")
	stockinCreateCmd.Flags().StringArrayVar(&stockinItems, "item", nil, "Line item productCode:quantity:unitPrice (repeatable)")
}
