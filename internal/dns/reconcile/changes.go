package reconcile

import "github.com/bobby/zonesync/internal/dns/domain"

// buildChanges renders a decision into the ordered change batch to submit.
// A replacement deletes the existing record set first, carrying the
// existing values and TTL, because the provider deletes by exact current
// value match; the create with the desired values follows in the same batch.
//
// A plain delete carries the caller-supplied values as-is: the provider
// requires the delete request to match its stored fingerprint, and a
// mismatch must surface as a provider error rather than be papered over
// with freshly-fetched values.
func buildChanges(decision Decision, spec RecordSpec, matched *domain.RecordSet) []domain.Change {
	desired := domain.RecordSet{
		Name:   domain.Fqdn(spec.Name),
		Type:   spec.Type,
		TTL:    spec.TTL,
		Values: domain.NormalizeValues(spec.Values),
	}

	switch decision {
	case CreateRecord:
		return []domain.Change{
			{Action: domain.ChangeActionCreate, Record: desired},
		}
	case ReplaceRecord:
		return []domain.Change{
			{Action: domain.ChangeActionDelete, Record: domain.RecordSet{
				Name:   desired.Name,
				Type:   matched.Type,
				TTL:    matched.TTL,
				Values: matched.Values,
			}},
			{Action: domain.ChangeActionCreate, Record: desired},
		}
	case DeleteRecord:
		return []domain.Change{
			{Action: domain.ChangeActionDelete, Record: desired},
		}
	default:
		return nil
	}
}
