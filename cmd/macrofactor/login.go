// ABOUTME: CLI command for password sign-in.
// ABOUTME: Persists the refresh token only after the identity provider accepts.
package main

import (
	"fmt"
	"net/http"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/macrofactor/internal/auth"
	"github.com/harperreed/macrofactor/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and save the refresh token",
	Long: `Sign in with your MacroFactor email and password.

On success the refresh token is saved to config.json in the config
directory; every other command uses it to mint short-lived access tokens.
A failed login leaves any existing credential untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exchanger := auth.NewExchanger(session.Credential{})
		exchanger.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout()}
		exchanger.Logger = logger

		cred, err := exchanger.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}

		store := newStore()
		if err := store.Save(cred); err != nil {
			return err
		}

		if jsonOutput {
			return printStatus("Logged in successfully", nil)
		}
		color.Green("✓ Logged in successfully")
		fmt.Printf("  credentials saved to %s\n", store.Path())
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
