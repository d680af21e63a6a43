package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/form"
	"github.com/retailops/storectl/pkg/views"
)

var (
	customerName    string
	customerYear    int
	customerAddress string
	customerPhone   string
)

// customersCmd groups the customer book operations
var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage the customer book",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers with search, sort and pagination",
	Long: `List customers. Search matches name and phone.

Sort keys: nameAsc, nameDesc, yearAsc, yearDesc.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListCustomers(cmd.Context())
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}

		page, current := derivePage(items, views.Customers(), listSearch, listSort, listPage)
		if jsonOutput {
			return printJSON(page.Items)
		}

		if page.Total == 0 {
			output.Warning("No customers match")
			return nil
		}

		w := newTable("CODE", "NAME", "BORN", "PHONE", "ADDRESS")
		for _, c := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", c.Code, c.Name, c.BirthYear, c.Phone, c.Address)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		printFooter(current, page.TotalPages, page.Total)
		return nil
	},
}

var customersUpdateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update a customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := requireUser(cmd)
		if err != nil {
			return err
		}

		// The backend has no single-customer route; start from the listing.
		all, err := client.ListCustomers(cmd.Context())
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		var draft form.CustomerDraft
		found := false
		for _, c := range all {
			if c.Code == args[0] {
				draft = form.CustomerDraftFrom(c)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("customer %s not found", args[0])
		}

		if cmd.Flags().Changed("name") {
			draft.Name = customerName
		}
		if cmd.Flags().Changed("birth-year") {
			draft.BirthYear = customerYear
		}
		if cmd.Flags().Changed("address") {
			draft.Address = customerAddress
		}
		if cmd.Flags().Changed("phone") {
			draft.Phone = customerPhone
		}
		if err := draft.Validate(); err != nil {
			return err
		}

		updated, err := client.UpdateCustomer(cmd.Context(), args[0], draft.Request())
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		output.Success("Updated customer %s", updated.Code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersUpdateCmd)

	addListFlags(customersListCmd)

	customersUpdateCmd.Flags().StringVar(&customerName, "name", "", "Customer name")
	customersUpdateCmd.Flags().IntVar(&customerYear, "birth-year", 0, "Birth year")
	customersUpdateCmd.Flags().StringVar(&customerAddress, "address", "", "Address")
	customersUpdateCmd.Flags().StringVar(&customerPhone, "phone", "", "Phone number")
}
