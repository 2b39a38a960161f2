package zone

import (
	"context"
	"fmt"
	"time"

	"github.com/bobby/zonesync/internal/auditlog"
	"github.com/bobby/zonesync/internal/config"
	dnsdomain "github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/dns/reconcile"
	"github.com/bobby/zonesync/internal/dns/route53"
	"github.com/bobby/zonesync/internal/services"
	"github.com/bobby/zonesync/internal/services/auth"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "zone" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Reconcile hosted zones",
		Long: `Declare hosted zones as present or absent. Present creates the zone when
missing and reports the existing zone ID otherwise.`,
	}

	cmd.AddCommand(PresentCommand())
	cmd.AddCommand(AbsentCommand())

	cmd.PersistentFlags().String("region", "", "AWS region (overrides the region config key)")

	return cmd
}

// newProvider builds the live hosted-zone provider. Tests swap this out for a mock.
var newProvider = func(ctx context.Context, region string) (dnsdomain.Provider, error) {
	awsCfg, err := services.LoadAWSConfig(ctx, auth.DefaultStore(), region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return route53.New(awsCfg), nil
}

func newReconciler(cmd *cobra.Command) (*reconcile.Reconciler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	region := cmd.Flag("region").Value.String()
	if region == "" {
		region = cfg.Region
	}

	provider, err := newProvider(cmd.Context(), region)
	if err != nil {
		return nil, err
	}

	return reconcile.New(provider), nil
}

// recordAudit writes a best-effort audit entry for a zone operation.
// Errors opening the repository or saving the entry are silently discarded.
func recordAudit(command, args, zone string, changed bool, err error, start time.Time) {
	repo, openErr := auditlog.Open()
	if openErr != nil {
		return
	}
	defer repo.Close()

	entry := &auditlog.AuditEntry{
		Timestamp:  start,
		Command:    command,
		Args:       args,
		Zone:       zone,
		Changed:    changed,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	_ = repo.Save(entry)
}
