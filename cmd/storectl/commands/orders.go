package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/views"
)

var (
	orderCustomer     string
	orderNewName      string
	orderNewBirthYear int
	orderNewAddress   string
	orderNewPhone     string
	orderItems        []string
)

// ordersCmd groups the sales order operations
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage sales orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders with search, sort and pagination",
	Long: `List order headers. Search matches order, customer and employee codes.

Sort keys: dateAsc, dateDesc.

When the backend is unreachable this listing falls back to a built-in
sample dataset so the view stays usable offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListOrders(cmd.Context())
		if err != nil {
			// Read path degrades to fixtures; writes never do.
			output.Warning("Backend unavailable (%v); showing sample orders", err)
			items = api.SampleOrders()
		}

		page, current := derivePage(items, views.Orders(), listSearch, listSort, listPage)
		if jsonOutput {
			return printJSON(page.Items)
		}

		if page.Total == 0 {
			output.Warning("No orders match")
			return nil
		}

		w := newTable("CODE", "CUSTOMER", "EMPLOYEE", "DATE", "TOTAL")
		for _, o := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Code, o.CustomerCode, o.EmployeeCode, o.CreatedAt, o.Total)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printFooter(current, page.TotalPages, page.Total)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show an order's line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		lines, err := client.OrderDetails(cmd.Context(), args[0])
		if err != nil {
			output.Warning("Backend unavailable (%v); showing sample detail", err)
			lines = api.SampleOrderLines(args[0])
		}

		if jsonOutput {
			return printJSON(lines)
		}

		w := newTable("LINE", "PRODUCT", "QTY", "UNIT PRICE", "TOTAL")
		for _, l := range lines {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", l.Code, l.ProductCode, l.Quantity, l.UnitPrice, l.LineTotal)
		}
		return w.Flush()
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order",
	Long: `Create an order for the signed-in employee.

Pass --customer for an existing customer, or --customer-name (plus optional
contact flags) to register a new one with the order. Items are repeated
--item flags of the form productCode:quantity.

Examples:
  storectl orders create --customer KH07 --item P1:2 --item P2:1
  storectl orders create --customer-name "Nguyen Van Moi" --phone 0900000000 --item P1:1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		lines, err := parseItems(orderItems)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return fmt.Errorf("at least one --item is required")
		}
		if orderCustomer == "" && orderNewName == "" {
			return fmt.Errorf("pass --customer or --customer-name")
		}

		req := api.CreateOrderRequest{
			EmployeeCode: user.EmployeeCode,
			CustomerCode: orderCustomer,
			Lines:        lines,
		}
		if orderCustomer == "" {
			req.CustomerName = orderNewName
			req.BirthYear = orderNewBirthYear
			req.Address = orderNewAddress
			req.Phone = orderNewPhone
		}

		created, err := client.CreateOrder(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		output.Success("Created order %s, total %s", created.Code, created.Total)
		return nil
	},
}

func parseItems(specs []string) ([]api.OrderLineRequest, error) {
	out := make([]api.OrderLineRequest, 0, len(specs))
	for _, s := range specs {
		code, qtyStr, ok := strings.Cut(s, ":")
		if !ok || code == "" {
			return nil, fmt.Errorf("invalid --item %q, want productCode:quantity", s)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("invalid quantity in --item %q", s)
		}
		out = append(out, api.OrderLineRequest{ProductCode: code, Quantity: qty})
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersCreateCmd)

	addListFlags(ordersListCmd)

	ordersCreateCmd.Flags().StringVar(&orderCustomer, "customer", "", "Existing customer code")
	ordersCreateCmd.Flags().StringVar(&orderNewName, "customer-name", "", "New customer name")
	ordersCreateCmd.Flags().IntVar(&orderNewBirthYear, "birth-year", 0, "New customer birth year")
	ordersCreateCmd.Flags().StringVar(&orderNewAddress, "address", "", "New customer address")
	ordersCreateCmd.Flags().StringVar(&orderNewPhone, "phone", "", "New customer phone")
	ordersCreateCmd.Flags().StringArrayVar(&orderItems, "item", nil, "Line item productCode:quantity (repeatable)")
}
