package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/smarttask/internal/credential"
	"github.com/nhle/smarttask/internal/theme"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage secrets stored in the OS keyring",
	Long: "Manage secrets stored in the OS keyring. Known keys: " +
		strings.Join(credential.Keys, ", ") + ".",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a secret; the value is read from stdin when omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := ""
		if len(args) == 2 {
			value = args[1]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading value from stdin: %w", err)
			}
			value = strings.TrimSpace(line)
		}
		if value == "" {
			return fmt.Errorf("empty value for %s", args[0])
		}

		if err := credential.Set(args[0], value); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("Stored "+args[0]))
		return nil
	},
}

var credentialDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credential.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("Deleted "+args[0]))
		return nil
	},
}

func init() {
	credentialCmd.AddCommand(credentialSetCmd, credentialDeleteCmd)
}
