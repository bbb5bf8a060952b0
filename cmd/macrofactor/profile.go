// ABOUTME: CLI command for showing the user profile.
// ABOUTME: Renders the passthrough document, hiding the bulky planner blob.
package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		profile, err := client.GetProfile(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(profile)
		}

		fmt.Println("── Profile ──")
		keys := make([]string, 0, len(profile))
		for k := range profile {
			// The planner blob is large and not human-oriented.
			if k == "planner" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			value, err := json.Marshal(profile[k])
			if err != nil {
				return fmt.Errorf("encode output: %w", err)
			}
			fmt.Printf("  %s: %s\n", k, value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
