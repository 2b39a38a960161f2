package zone

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/dns/reconcile"
	"github.com/bobby/zonesync/internal/util"

	"github.com/spf13/cobra"
)

// AbsentCommand returns the "zone absent" subcommand.
func AbsentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absent <zone>",
		Short: "Ensure a hosted zone does not exist",
		Long: `Ensure a hosted zone does not exist. The zone is deleted as-is: records
still in it are not cleaned up first, and the provider will reject the
deletion of a non-empty zone. A zone that is already absent is a no-op.

Examples:
  zonesync zone absent example.com
  zonesync zone absent example.com --yes   # skip the confirmation prompt`,
		Args:         cobra.ExactArgs(1),
		RunE:         runAbsent,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runAbsent(cmd *cobra.Command, args []string) error {
	start := time.Now()
	zoneName := args[0]

	if err := util.ValidateRecordName(zoneName); err != nil {
		return err
	}

	fqdn := dnsdomain.Fqdn(zoneName)

	skipPrompt, _ := cmd.Flags().GetBool("yes")
	if !skipPrompt {
		fmt.Fprintf(cmd.OutOrStdout(), "This deletes hosted zone %s. Continue? [y/N]: ", fqdn)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, _ := reader.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Zone deletion cancelled.")
			return nil
		}
	}

	r, err := newReconciler(cmd)
	if err != nil {
		return err
	}

	outcome, err := r.ReconcileZone(cmd.Context(), reconcile.IntentAbsent, reconcile.ZoneSpec{Name: zoneName})
	recordAudit(cmd.CommandPath(), "", zoneName, outcome.Changed, err, start)
	if err != nil {
		return err
	}

	if outcome.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), "Hosted zone %s deleted.\n", fqdn)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Hosted zone %s already absent.\n", fqdn)
	}
	return nil
}
