package record

import (
	"fmt"
	"strings"
	"time"

	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/dns/reconcile"
	"github.com/bobby/zonesync/internal/util"

	"github.com/spf13/cobra"
)

// PresentCommand returns the "record present" subcommand.
func PresentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present <zone>",
		Short: "Ensure a record set exists with the given values",
		Long: `Ensure a record set exists in the hosted zone with exactly the given
values. A matching record set is left alone. A record set with the same
name and type but different values or TTL is only replaced when
--overwrite is given.

Examples:
  zonesync record present example.com --record www.example.com --type A --value 1.2.3.4
  zonesync record present example.com --record mail.example.com --type MX --value "10 mx1.example.com,20 mx2.example.com"
  zonesync record present example.com --record www.example.com --type A --value 5.6.7.8 --overwrite`,
		Args:         cobra.ExactArgs(1),
		RunE:         runPresent,
		SilenceUsage: true,
	}

	cmd.Flags().String("record", "", "Record set name [required]")
	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, PTR, SRV, SPF, NS) [required]")
	cmd.Flags().StringSlice("value", nil, "Record value; repeat or comma-separate for multiple values [required]")
	cmd.Flags().Int64("ttl", 0, "Time-to-live in seconds (default: 3600)")
	cmd.Flags().Bool("overwrite", false, "Replace an existing record set whose values or TTL differ")

	cmd.MarkFlagRequired("record")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("value")

	return cmd
}

func runPresent(cmd *cobra.Command, args []string) error {
	return runRecordIntent(cmd, args[0], reconcile.IntentPresent)
}

// runRecordIntent is the shared driver for "record present" and "record
// absent": it parses the common flags, reconciles, audits, and prints the
// result.
func runRecordIntent(cmd *cobra.Command, zoneName string, intent reconcile.Intent) error {
	start := time.Now()

	recordName, _ := cmd.Flags().GetString("record")
	typeRaw, _ := cmd.Flags().GetString("type")
	rawValues, _ := cmd.Flags().GetStringSlice("value")
	ttl, _ := cmd.Flags().GetInt64("ttl")
	overwrite := false
	if cmd.Flags().Lookup("overwrite") != nil {
		overwrite, _ = cmd.Flags().GetBool("overwrite")
	}

	if err := util.ValidateRecordName(recordName); err != nil {
		return err
	}

	recordType, err := dnsdomain.ParseRecordType(typeRaw)
	if err != nil {
		return err
	}

	var values []string
	for _, raw := range rawValues {
		values = append(values, dnsdomain.ParseValues(raw)...)
	}

	if ttl <= 0 {
		ttl = configuredTTL()
	}

	r, err := newReconciler(cmd)
	if err != nil {
		return err
	}

	spec := reconcile.RecordSpec{
		Zone:      zoneName,
		Name:      recordName,
		Type:      recordType,
		TTL:       ttl,
		Values:    values,
		Overwrite: overwrite,
	}

	outcome, err := r.ReconcileRecord(cmd.Context(), intent, spec)
	recordAudit(cmd.CommandPath(), strings.Join(values, ","), zoneName, recordName, string(recordType), outcome.Changed, err, start)
	if err != nil {
		return err
	}

	fqdn := dnsdomain.Fqdn(recordName)
	switch {
	case intent == reconcile.IntentAbsent && outcome.Changed:
		fmt.Fprintf(cmd.OutOrStdout(), "Record %s (%s) removed from zone %s.\n", fqdn, recordType, zoneName)
	case intent == reconcile.IntentAbsent:
		fmt.Fprintf(cmd.OutOrStdout(), "Record %s (%s) already absent from zone %s.\n", fqdn, recordType, zoneName)
	case outcome.Changed:
		fmt.Fprintf(cmd.OutOrStdout(), "Record %s (%s) reconciled in zone %s.\n", fqdn, recordType, zoneName)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Record %s (%s) already up to date.\n", fqdn, recordType)
	}
	return nil
}
