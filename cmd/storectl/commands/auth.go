package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/form"
)

var (
	loginPassword string
	passwdOld     string
	passwdNew     string
)

// loginCmd signs in and stores the session token
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, holder, err := newSession()
		if err != nil {
			return err
		}

		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		if err := holder.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}

		user := holder.Current()
		output.Success("Signed in as %s (employee %s)", user.Username, user.EmployeeCode)
		return nil
	},
}

// logoutCmd ends the session and removes the stored token
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, holder, err := newSession()
		if err != nil {
			return err
		}
		if err := holder.Init(cmd.Context()); err != nil {
			return err
		}
		holder.Logout(cmd.Context())
		output.Success("Signed out")
		return nil
	},
}

// whoamiCmd shows the current identity
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, user, err := requireUser(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("Username:      %s\n", user.Username)
		fmt.Printf("Account code:  %s\n", user.AccountCode)
		fmt.Printf("Employee code: %s\n", user.EmployeeCode)
		return nil
	},
}

// passwdCmd changes the signed-in account's password
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the signed-in account's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		draft := form.PasswordDraft{
			AccountCode: user.AccountCode,
			Old:         passwdOld,
			New:         passwdNew,
			Confirm:     passwdNew,
		}
		if err := draft.Validate(); err != nil {
			return err
		}

		if err := client.ChangePassword(cmd.Context(), draft.AccountCode, draft.Old, draft.New); err != nil {
			return err
		}
		output.Success("Password changed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(passwdCmd)

	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")

	passwdCmd.Flags().StringVar(&passwdOld, "old", "", "Current password")
	passwdCmd.Flags().StringVar(&passwdNew, "new", "", "New password")
	_ = passwdCmd.MarkFlagRequired("old")
	_ = passwdCmd.MarkFlagRequired("new")
}
