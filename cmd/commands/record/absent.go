package record

import (
	"github.com/bobby/zonesync/internal/dns/reconcile"

	"github.com/spf13/cobra"
)

// AbsentCommand returns the "record absent" subcommand.
func AbsentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absent <zone>",
		Short: "Ensure a record set does not exist",
		Long: `Ensure a record set does not exist in the hosted zone. The provider
deletes by exact value match, so the values given here must equal the
values the record currently holds. A record that is already absent is a
no-op.

Examples:
  zonesync record absent example.com --record www.example.com --type A --value 1.2.3.4`,
		Args:         cobra.ExactArgs(1),
		RunE:         runAbsent,
		SilenceUsage: true,
	}

	cmd.Flags().String("record", "", "Record set name [required]")
	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, PTR, SRV, SPF, NS) [required]")
	cmd.Flags().StringSlice("value", nil, "Current record value; repeat or comma-separate for multiple values [required]")
	cmd.Flags().Int64("ttl", 0, "Time-to-live in seconds (default: 3600)")

	cmd.MarkFlagRequired("record")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("value")

	return cmd
}

func runAbsent(cmd *cobra.Command, args []string) error {
	return runRecordIntent(cmd, args[0], reconcile.IntentAbsent)
}
