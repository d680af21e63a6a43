package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/pkg/api"
	"github.com/retailops/storectl/pkg/config"
	"github.com/retailops/storectl/pkg/session"
)

var (
	// Global flags
	serverURL  string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "storectl - Terminal console for the store management backend",
	Long: `storectl is a terminal client for the retail management backend:
products, customers, sales orders, stock-in receipts and the summary
dashboard, all over the server's HTTP API.

Every listing supports in-memory search, sort and pagination; writes go
straight to the server and the listing is re-fetched afterwards. Run
'storectl console' for the interactive full-screen mode.`,
	Version: "1.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (defaults to STORECTL_SERVER or "+config.DefaultServerURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// newSession wires config, token store, session holder and API client
// together. The holder feeds the client's bearer interceptor.
func newSession() (*api.Client, *session.Holder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	holder := session.NewHolder(session.NewFileStore(cfg.TokenPath))

	opts := []api.Option{api.WithTokenProvider(holder.Token)}
	if verbose {
		opts = append(opts, api.WithDebug())
	}
	client := api.New(cfg.ServerURL, opts...)
	holder.UseAPI(client)

	return client, holder, nil
}

// requireUser rehydrates the stored session and fails when nobody is
// signed in.
func requireUser(cmd *cobra.Command) (*api.Client, *session.Holder, *session.User, error) {
	client, holder, err := newSession()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := holder.Init(cmd.Context()); err != nil {
		return nil, nil, nil, err
	}
	user := holder.Current()
	if user == nil {
		return nil, nil, nil, fmt.Errorf("not signed in; run 'storectl login' first")
	}
	return client, holder, user, nil
}
