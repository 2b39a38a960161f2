package record

import (
	"context"
	"fmt"
	"strconv"
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

// NewCommand returns the top-level "record" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Reconcile record sets in a hosted zone",
		Long: `Declare record sets as present or absent in a hosted zone, or list the
current state of one. Present and absent runs are idempotent.`,
	}

	cmd.AddCommand(PresentCommand())
	cmd.AddCommand(AbsentCommand())
	cmd.AddCommand(ListCommand())

	cmd.PersistentFlags().String("region", "", "AWS region (overrides the region config key)")
	cmd.PersistentFlags().Int("retry-interval", 0, "Seconds to wait before resubmitting a change the zone was too busy for")

	return cmd
}

// newProvider builds the live record-set provider. Tests swap this out for a mock.
var newProvider = func(ctx context.Context, region string) (dnsdomain.Provider, error) {
	awsCfg, err := services.LoadAWSConfig(ctx, auth.DefaultStore(), region)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return route53.New(awsCfg), nil
}

// newReconciler resolves region and retry interval from flags, falling back
// to the persisted config keys, and builds a Reconciler on the live provider.
func newReconciler(cmd *cobra.Command) (*reconcile.Reconciler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	region := cmd.Flag("region").Value.String()
	if region == "" {
		region = cfg.Region
	}

	interval := reconcile.DefaultRetryInterval
	if flagSecs, _ := cmd.Flags().GetInt("retry-interval"); flagSecs > 0 {
		interval = time.Duration(flagSecs) * time.Second
	} else if cfg.RetryInterval != "" {
		secs, err := strconv.Atoi(cfg.RetryInterval)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid retry-interval %q in config", cfg.RetryInterval)
		}
		interval = time.Duration(secs) * time.Second
	}

	provider, err := newProvider(cmd.Context(), region)
	if err != nil {
		return nil, err
	}

	return reconcile.New(provider, reconcile.WithRetryInterval(interval)), nil
}

// configuredTTL returns the default-ttl config value in seconds, or 0 when
// unset or unreadable, leaving the built-in default to apply.
func configuredTTL() int64 {
	cfg, err := config.Load()
	if err != nil || cfg.DefaultTTL == "" {
		return 0
	}
	secs, err := strconv.Atoi(cfg.DefaultTTL)
	if err != nil || secs <= 0 {
		return 0
	}
	return int64(secs)
}

// recordAudit writes a best-effort audit entry for a record operation.
// Errors opening the repository or saving the entry are silently discarded.
func recordAudit(command, args, zone, record, recordType string, changed bool, err error, start time.Time) {
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
		Record:     record,
		RecordType: recordType,
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
