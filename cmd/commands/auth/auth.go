package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage stored AWS credentials",
		Long: `Manage stored AWS credentials.

Use this command group to store a credential pair securely in the local
keychain. When no pair is stored, the default AWS credential chain
(environment variables, shared config, instance role) is used instead.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
