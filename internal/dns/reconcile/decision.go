package reconcile

import (
	"fmt"
	"slices"

	"github.com/bobby/zonesync/internal/dns/domain"
)

// Intent is the declared state for the reconciled resource.
type Intent int

const (
	// IntentPresent converges toward the record (or zone) existing.
	IntentPresent Intent = iota

	// IntentAbsent converges toward the record (or zone) not existing.
	IntentAbsent

	// IntentList reports the current state without mutating anything.
	IntentList
)

func (i Intent) String() string {
	switch i {
	case IntentPresent:
		return "present"
	case IntentAbsent:
		return "absent"
	case IntentList:
		return "list"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// RecordSpec is the desired state of a single record set. Name is the full
// record name; Values is an order-irrelevant value set. It is constructed
// once from caller input and never mutated afterwards.
type RecordSpec struct {
	Zone      string
	Name      string
	Type      domain.RecordType
	TTL       int64
	Values    []string
	Overwrite bool
}

// Decision is the action Decide picks for a record spec.
type Decision int

const (
	// NoChange means the live state already satisfies the intent.
	NoChange Decision = iota

	// Report means return the matched record set without mutating.
	Report

	// CreateRecord means emit a single create change.
	CreateRecord

	// ReplaceRecord means emit a delete of the existing record set followed
	// by a create of the desired one, in one batch.
	ReplaceRecord

	// DeleteRecord means emit a single delete change carrying the
	// caller-supplied values.
	DeleteRecord
)

// Decide compares the desired record against the matched existing record
// set (nil when none matched) and picks an action. It is pure: no network,
// no mutation, deterministic for a given input.
func Decide(intent Intent, spec RecordSpec, matched *domain.RecordSet) (Decision, error) {
	if spec.Type == "" {
		return NoChange, fmt.Errorf("record type is required when a record is given")
	}
	if (intent == IntentPresent || intent == IntentAbsent) && len(spec.Values) == 0 {
		return NoChange, fmt.Errorf("at least one value is required for %s", intent)
	}
	if intent == IntentList {
		return Report, nil
	}

	if intent == IntentAbsent {
		if matched == nil {
			return NoChange, nil
		}
		return DeleteRecord, nil
	}

	// IntentPresent
	if matched == nil {
		return CreateRecord, nil
	}
	if recordMatches(spec, matched) {
		return NoChange, nil
	}
	if !spec.Overwrite {
		return NoChange, fmt.Errorf("%w: set overwrite to replace it", domain.ErrConflict)
	}
	return ReplaceRecord, nil
}

// recordMatches reports whether the existing record set already equals the
// desired one: same type, same TTL (compared as integers), and the same
// value set regardless of order.
func recordMatches(spec RecordSpec, existing *domain.RecordSet) bool {
	if existing.Type != spec.Type || existing.TTL != spec.TTL {
		return false
	}
	return slices.Equal(domain.NormalizeValues(spec.Values), domain.NormalizeValues(existing.Values))
}
