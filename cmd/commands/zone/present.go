package zone

import (
	"fmt"
	"time"

	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/dns/reconcile"
	"github.com/bobby/zonesync/internal/util"

	"github.com/spf13/cobra"
)

// PresentCommand returns the "zone present" subcommand.
func PresentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present <zone>",
		Short: "Ensure a hosted zone exists",
		Long: `Ensure a hosted zone exists. An existing zone is left alone and its ID
reported. Passing --vpc-id creates a VPC-private zone; --vpc-region is
then required.

Examples:
  zonesync zone present example.com
  zonesync zone present internal.example.com --vpc-id vpc-0abc123 --vpc-region eu-west-1`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPresent,
		SilenceUsage: true,
	}

	cmd.Flags().String("vpc-id", "", "VPC to associate; makes the zone private")
	cmd.Flags().String("vpc-region", "", "Region of the associated VPC")

	return cmd
}

func runPresent(cmd *cobra.Command, args []string) error {
	start := time.Now()
	zoneName := args[0]

	if err := util.ValidateRecordName(zoneName); err != nil {
		return err
	}

	vpcID, _ := cmd.Flags().GetString("vpc-id")
	vpcRegion, _ := cmd.Flags().GetString("vpc-region")

	r, err := newReconciler(cmd)
	if err != nil {
		return err
	}

	spec := reconcile.ZoneSpec{
		Name:      zoneName,
		VPCID:     vpcID,
		VPCRegion: vpcRegion,
	}

	outcome, err := r.ReconcileZone(cmd.Context(), reconcile.IntentPresent, spec)
	recordAudit(cmd.CommandPath(), vpcID, zoneName, outcome.Changed, err, start)
	if err != nil {
		return err
	}

	fqdn := dnsdomain.Fqdn(zoneName)
	if outcome.Changed {
		fmt.Fprintf(cmd.OutOrStdout(), "Created hosted zone %s (ID: %s).\n", fqdn, outcome.ZoneID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Hosted zone %s already exists (ID: %s).\n", fqdn, outcome.ZoneID)
	}
	return nil
}
