package domain

import (
	"fmt"
	"strings"
)

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeNS    RecordType = "NS"
)

// validRecordTypes is the set of record types the provider accepts.
var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeCNAME: true,
	RecordTypeMX:    true,
	RecordTypeAAAA:  true,
	RecordTypeTXT:   true,
	RecordTypePTR:   true,
	RecordTypeSRV:   true,
	RecordTypeSPF:   true,
	RecordTypeNS:    true,
}

// ParseRecordType validates a caller-supplied type string and returns the
// canonical uppercase RecordType.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	if !validRecordTypes[t] {
		return "", fmt.Errorf("unsupported record type %q", s)
	}
	return t, nil
}

// Zone is a hosted zone at the provider: a trailing-dot-normalized name
// plus the provider's opaque zone identifier.
type Zone struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// RecordSet is a single (name, type) record set with its TTL and values.
// When fetched from the provider, Name and Values may carry provider
// escape sequences; DecodeName undoes them for comparison.
type RecordSet struct {
	Name   string     `json:"name"`
	Type   RecordType `json:"type"`
	TTL    int64      `json:"ttl"`
	Values []string   `json:"values"`
}

// ChangeAction is a single change-batch operation.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionDelete ChangeAction = "DELETE"
)

// Change is one entry in a change batch. A replacement batch must order the
// Delete (carrying the existing values and TTL) before the Create, because
// the provider deletes by exact value match.
type Change struct {
	Action ChangeAction
	Record RecordSet
}

// CreateZoneOpts holds the optional parameters for creating a hosted zone.
// When VPCID is set the zone is created as a VPC-private zone; VPCRegion is
// then required.
type CreateZoneOpts struct {
	VPCID     string
	VPCRegion string
}
