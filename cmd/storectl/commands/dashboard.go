package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/api"
)

var dashboardLimit int

// dashboardCmd prints the summary dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the summary dashboard",
	Long: `Show the KPI, weekly revenue, top customer, low-stock and category
revenue boards. Each board loads independently; a board whose request fails
falls back to a built-in sample dataset with a warning, so one outage never
blanks the whole screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		customers, err := client.TotalCustomers(ctx)
		if err != nil {
			output.Warning("KPI board unavailable (%v); showing sample", err)
			customers = api.SampleTotalCustomers()
		}

		weekly, err := client.GetWeeklyRevenue(ctx)
		if err != nil {
			output.Warning("Weekly revenue unavailable (%v); showing sample", err)
			weekly = api.SampleWeeklyRevenue()
		}

		top, err := client.GetTopCustomers(ctx, dashboardLimit)
		if err != nil {
			output.Warning("Top customers unavailable (%v); showing sample", err)
			top = api.SampleTopCustomers()
		}

		low, err := client.GetLowStockProducts(ctx, dashboardLimit)
		if err != nil {
			output.Warning("Low-stock board unavailable (%v); showing sample", err)
			low = api.SampleLowStock()
		}

		byCategory, err := client.GetRevenueByCategory(ctx)
		if err != nil {
			output.Warning("Category revenue unavailable (%v); showing sample", err)
			byCategory = api.SampleRevenueByCategory()
		}

		if jsonOutput {
			return printJSON(map[string]any{
				"totalCustomers":    customers,
				"weeklyRevenue":     weekly,
				"topCustomers":      top,
				"lowStockProducts":  low,
				"revenueByCategory": byCategory,
			})
		}

		output.Section("Overview")
		fmt.Printf("Customers: %d\n", customers)

		output.Section("Weekly revenue")
		w := newTable("DAY", "REVENUE")
		for _, r := range weekly {
			fmt.Fprintf(w, "%s\t%s\n", r.Day, r.Revenue)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		output.Section("Top customers")
		w = newTable("#", "NAME", "TOTAL SPENT")
		for _, r := range top {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.Rank, r.Name, r.TotalSpent)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		output.Section("Low stock")
		w = newTable("NAME", "STOCK")
		for _, r := range low {
			fmt.Fprintf(w, "%s\t%d\n", r.Name, r.Stock)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		output.Section("Revenue by category")
		w = newTable("CATEGORY", "SHARE", "AMOUNT")
		for _, r := range byCategory {
			fmt.Fprintf(w, "%s\t%.0f%%\t%s\n", r.Category, r.Percent, r.Amount)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().IntVar(&dashboardLimit, "limit", 5, "Rows per ranking board")
}
