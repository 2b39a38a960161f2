package config

import (
	"github.com/bobby/zonesync/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage zonesync configuration",
		Long: "View and modify persistent zonesync settings.\n\n" +
			"Configuration is stored at ~/.config/zonesync/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
