package record

import (
	"encoding/json"
	"time"

	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/dns/reconcile"
	"github.com/bobby/zonesync/internal/util"

	"github.com/spf13/cobra"
)

// ListCommand returns the "record list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <zone>",
		Short: "Report the current state of a record set",
		Long: `Report the current state of a record set as JSON without changing
anything. A record that does not exist reports an empty set.

Examples:
  zonesync record list example.com --record www.example.com --type A`,
		Args:         cobra.ExactArgs(1),
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().String("record", "", "Record set name [required]")
	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, PTR, SRV, SPF, NS) [required]")

	cmd.MarkFlagRequired("record")
	cmd.MarkFlagRequired("type")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	start := time.Now()
	zoneName := args[0]

	recordName, _ := cmd.Flags().GetString("record")
	typeRaw, _ := cmd.Flags().GetString("type")

	if err := util.ValidateRecordName(recordName); err != nil {
		return err
	}

	recordType, err := dnsdomain.ParseRecordType(typeRaw)
	if err != nil {
		return err
	}

	r, err := newReconciler(cmd)
	if err != nil {
		return err
	}

	spec := reconcile.RecordSpec{
		Zone: zoneName,
		Name: recordName,
		Type: recordType,
	}

	outcome, err := r.ReconcileRecord(cmd.Context(), reconcile.IntentList, spec)
	recordAudit(cmd.CommandPath(), "", zoneName, recordName, string(recordType), false, err, start)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(outcome.Set)
}
