// Package reconcile converges a declared hosted-zone or record-set state
// against the live state at the DNS provider, applying the minimal change
// batch needed. One Reconciler call performs a small fixed number of
// blocking round trips: one zone listing, one optional record-set listing,
// and one optional (possibly retried) commit.
package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bobby/zonesync/internal/dns/domain"
)

const (
	// DefaultTTL is applied when the caller does not specify one.
	DefaultTTL = 3600

	// DefaultRetryInterval is how long to wait before resubmitting a batch
	// that collided with a prior in-flight change.
	DefaultRetryInterval = 500 * time.Second
)

// Reconciler drives a domain.Provider toward a declared state. Nothing is
// cached or shared across calls; each call fetches fresh snapshots.
type Reconciler struct {
	provider  domain.Provider
	committer *Committer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithRetryInterval overrides the commit retry interval.
func WithRetryInterval(interval time.Duration) Option {
	return func(r *Reconciler) {
		r.committer = NewCommitter(r.provider, interval)
	}
}

// New returns a Reconciler backed by the given provider.
func New(provider domain.Provider, opts ...Option) *Reconciler {
	r := &Reconciler{
		provider:  provider,
		committer: NewCommitter(provider, DefaultRetryInterval),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReportedSet mirrors a matched record set in caller-facing form.
type ReportedSet struct {
	Zone   string   `json:"zone"`
	Type   string   `json:"type"`
	Record string   `json:"record"`
	TTL    int64    `json:"ttl"`
	Value  string   `json:"value"`
	Values []string `json:"values"`
}

// Outcome reports the result of one reconciliation run.
type Outcome struct {
	Changed bool         `json:"changed"`
	Set     *ReportedSet `json:"set,omitempty"`
	ZoneID  string       `json:"id,omitempty"`
}

// ReconcileRecord converges a single record set toward the intent.
func (r *Reconciler) ReconcileRecord(ctx context.Context, intent Intent, spec RecordSpec) (Outcome, error) {
	zone, found, err := r.resolveZone(ctx, spec.Zone)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return Outcome{}, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, domain.Fqdn(spec.Zone))
	}

	spec.Name = domain.Fqdn(spec.Name)
	spec.Values = domain.NormalizeValues(spec.Values)
	if spec.TTL <= 0 {
		spec.TTL = DefaultTTL
	}

	matched, err := r.findRecordSet(ctx, zone, spec.Name, spec.Type)
	if err != nil {
		return Outcome{}, err
	}

	decision, err := Decide(intent, spec, matched)
	if err != nil {
		return Outcome{}, err
	}

	switch decision {
	case NoChange:
		return Outcome{Changed: false}, nil
	case Report:
		return Outcome{Changed: false, Set: reportSet(zone, matched)}, nil
	default:
		changes := buildChanges(decision, spec, matched)
		if err := r.committer.Commit(ctx, zone.ID, changes); err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true}, nil
	}
}

// ZoneSpec is the desired state of a hosted zone. A non-empty VPCID makes
// the zone VPC-private and requires VPCRegion as well.
type ZoneSpec struct {
	Name      string
	VPCID     string
	VPCRegion string
}

// ReconcileZone converges the hosted zone itself toward the intent. Absent
// deletes the zone without cleaning up contained records first; emptying
// the zone beforehand is the caller's responsibility.
func (r *Reconciler) ReconcileZone(ctx context.Context, intent Intent, spec ZoneSpec) (Outcome, error) {
	name := domain.Fqdn(spec.Name)

	zone, found, err := r.resolveZone(ctx, spec.Name)
	if err != nil {
		return Outcome{}, err
	}

	switch intent {
	case IntentPresent:
		if found {
			return Outcome{Changed: false, ZoneID: zone.ID}, nil
		}
		if spec.VPCID != "" && spec.VPCRegion == "" {
			return Outcome{}, fmt.Errorf("vpc region is required when a vpc id is given")
		}
		created, err := r.provider.CreateZone(ctx, name, domain.CreateZoneOpts{
			VPCID:     spec.VPCID,
			VPCRegion: spec.VPCRegion,
		})
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true, ZoneID: created.ID}, nil

	case IntentAbsent:
		if !found {
			return Outcome{Changed: false}, nil
		}
		if err := r.provider.DeleteZone(ctx, zone.ID); err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true}, nil

	default:
		// Listing a zone is not a supported query; only records can be listed.
		return Outcome{}, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, name)
	}
}

// resolveZone lists all hosted zones once and looks the name up in memory.
func (r *Reconciler) resolveZone(ctx context.Context, name string) (domain.Zone, bool, error) {
	zones, err := r.provider.ListZones(ctx)
	if err != nil {
		return domain.Zone{}, false, err
	}

	want := domain.Fqdn(name)
	for _, zone := range zones {
		if zone.Name == want {
			return zone, true, nil
		}
	}
	return domain.Zone{}, false, nil
}

// findRecordSet lists the zone's record sets and returns the first whose
// decoded name and type equal the desired pair, with its name decoded and
// values normalized, or nil when none matches.
func (r *Reconciler) findRecordSet(ctx context.Context, zone domain.Zone, name string, recordType domain.RecordType) (*domain.RecordSet, error) {
	sets, err := r.provider.ListRecordSets(ctx, zone.ID)
	if err != nil {
		return nil, err
	}

	for _, set := range sets {
		if set.Type != recordType {
			continue
		}
		if domain.DecodeName(set.Name) != name {
			continue
		}
		matched := domain.RecordSet{
			Name:   domain.DecodeName(set.Name),
			Type:   set.Type,
			TTL:    set.TTL,
			Values: domain.NormalizeValues(set.Values),
		}
		return &matched, nil
	}
	return nil, nil
}

// reportSet renders the matched record set for the caller. A nil match
// yields an empty (not nil) set, mirroring a lookup that found nothing.
func reportSet(zone domain.Zone, matched *domain.RecordSet) *ReportedSet {
	if matched == nil {
		return &ReportedSet{}
	}
	return &ReportedSet{
		Zone:   zone.Name,
		Type:   string(matched.Type),
		Record: matched.Name,
		TTL:    matched.TTL,
		Value:  strings.Join(matched.Values, ","),
		Values: matched.Values,
	}
}
