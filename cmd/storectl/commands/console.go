package commands

import (
	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/tui"
)

// consoleCmd launches the interactive full-screen console
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive console",
	Long: `Open the full-screen console: dashboard, product, customer, order and
stock-in pages with live search, sorting, pagination and edit dialogs.

A stored session is reused when still valid; otherwise the console starts
at the login screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, holder, err := newSession()
		if err != nil {
			return err
		}
		return tui.Run(client, holder)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
