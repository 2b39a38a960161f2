package cmd

import (
	"os"

	"github.com/bobby/zonesync/cmd/commands/audit"
	"github.com/bobby/zonesync/cmd/commands/auth"
	cfgcmd "github.com/bobby/zonesync/cmd/commands/config"
	"github.com/bobby/zonesync/cmd/commands/record"
	"github.com/bobby/zonesync/cmd/commands/zone"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "zonesync",
		Short: "A CLI tool for reconciling Route53 hosted zones and record sets",
		Long: `zonesync declares the desired state of Route53 hosted zones and record
sets and converges the live state toward it. Runs are idempotent: a
record that already matches is left alone, and a record that differs is
only replaced when you ask for it.

Quick start:
  zonesync auth login                                  # Store AWS credentials
  zonesync zone present example.com                    # Ensure the zone exists
  zonesync record present example.com --record www.example.com --type A --value 1.2.3.4
  zonesync record list example.com --record www.example.com --type A`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(record.NewCommand())
	cmd.AddCommand(zone.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
