package domain

import "context"

// Provider is the interface the reconciler drives. It covers hosted zone
// listing and lifecycle plus record-set listing and batched mutation.
type Provider interface {
	// ListZones returns all hosted zones in the account.
	ListZones(ctx context.Context) ([]Zone, error)

	// ListRecordSets returns all record sets in the given zone. Names and
	// values are returned exactly as the provider stores them (escaped).
	ListRecordSets(ctx context.Context, zoneID string) ([]RecordSet, error)

	// ChangeRecordSets submits an ordered change batch as one atomic unit.
	ChangeRecordSets(ctx context.Context, zoneID string, changes []Change) error

	// CreateZone creates a hosted zone and returns it with its assigned ID.
	CreateZone(ctx context.Context, name string, opts CreateZoneOpts) (Zone, error)

	// DeleteZone deletes a hosted zone by ID. Contained record sets are not
	// cleaned up first; the provider rejects deleting a non-empty zone.
	DeleteZone(ctx context.Context, zoneID string) error
}
