package auth

import (
	"errors"
	"fmt"

	"github.com/bobby/zonesync/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which credentials are stored",
		Long: `Show which AWS credential entries are stored in the local keychain.

Example:
  zonesync auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			for _, entry := range []string{auth.AccessKeyEntry, auth.SecretKeyEntry} {
				_, err := store.GetSecret(entry)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: set\n", entry)
				case errors.Is(err, auth.ErrSecretNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not set\n", entry)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", entry, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
