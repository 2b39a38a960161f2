// Package route53 implements the domain.Provider interface against Amazon
// Route53 using the AWS SDK v2.
package route53

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/bobby/zonesync/internal/dns/domain"
)

const zoneIDPrefix = "/hostedzone/"

// api is the subset of the Route53 client the provider drives. Narrowing
// the surface keeps the provider testable without a live endpoint.
type api interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
	CreateHostedZone(ctx context.Context, params *route53.CreateHostedZoneInput, optFns ...func(*route53.Options)) (*route53.CreateHostedZoneOutput, error)
	DeleteHostedZone(ctx context.Context, params *route53.DeleteHostedZoneInput, optFns ...func(*route53.Options)) (*route53.DeleteHostedZoneOutput, error)
}

// Compile-time check that Provider satisfies domain.Provider.
var _ domain.Provider = (*Provider)(nil)

// Provider talks to Route53. It holds no state beyond the client handle;
// every method is a fresh round trip.
type Provider struct {
	client api
}

// New returns a Provider using the given AWS configuration.
func New(cfg aws.Config) *Provider {
	return &Provider{client: route53.NewFromConfig(cfg)}
}

// ListZones returns all hosted zones in the account, following pagination.
func (p *Provider) ListZones(ctx context.Context) ([]domain.Zone, error) {
	var zones []domain.Zone
	input := &route53.ListHostedZonesInput{}

	for {
		out, err := p.client.ListHostedZones(ctx, input)
		if err != nil {
			return nil, mapError(err)
		}
		for _, hz := range out.HostedZones {
			zones = append(zones, domain.Zone{
				Name: aws.ToString(hz.Name),
				ID:   strings.TrimPrefix(aws.ToString(hz.Id), zoneIDPrefix),
			})
		}
		if !out.IsTruncated {
			return zones, nil
		}
		input.Marker = out.NextMarker
	}
}

// ListRecordSets returns all record sets in the zone, following pagination.
// Names are returned exactly as Route53 stores them (octal-escaped).
func (p *Provider) ListRecordSets(ctx context.Context, zoneID string) ([]domain.RecordSet, error) {
	var sets []domain.RecordSet
	input := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
	}

	for {
		out, err := p.client.ListResourceRecordSets(ctx, input)
		if err != nil {
			return nil, mapError(err)
		}
		for _, rrs := range out.ResourceRecordSets {
			values := make([]string, 0, len(rrs.ResourceRecords))
			for _, rr := range rrs.ResourceRecords {
				values = append(values, aws.ToString(rr.Value))
			}
			sets = append(sets, domain.RecordSet{
				Name:   aws.ToString(rrs.Name),
				Type:   domain.RecordType(rrs.Type),
				TTL:    aws.ToInt64(rrs.TTL),
				Values: values,
			})
		}
		if !out.IsTruncated {
			return sets, nil
		}
		input.StartRecordName = out.NextRecordName
		input.StartRecordType = out.NextRecordType
		input.StartRecordIdentifier = out.NextRecordIdentifier
	}
}

// ChangeRecordSets submits the batch as one ChangeResourceRecordSets call.
// Route53 applies the batch atomically, preserving the delete-before-create
// ordering within it.
func (p *Provider) ChangeRecordSets(ctx context.Context, zoneID string, changes []domain.Change) error {
	batch := make([]types.Change, 0, len(changes))
	for _, change := range changes {
		records := make([]types.ResourceRecord, 0, len(change.Record.Values))
		for _, value := range change.Record.Values {
			records = append(records, types.ResourceRecord{Value: aws.String(value)})
		}
		batch = append(batch, types.Change{
			Action: types.ChangeAction(change.Action),
			ResourceRecordSet: &types.ResourceRecordSet{
				Name:            aws.String(change.Record.Name),
				Type:            types.RRType(change.Record.Type),
				TTL:             aws.Int64(change.Record.TTL),
				ResourceRecords: records,
			},
		})
	}

	_, err := p.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch:  &types.ChangeBatch{Changes: batch},
	})
	return mapError(err)
}

// CreateZone creates a hosted zone, as a private zone when a VPC is given.
func (p *Provider) CreateZone(ctx context.Context, name string, opts domain.CreateZoneOpts) (domain.Zone, error) {
	input := &route53.CreateHostedZoneInput{
		Name:            aws.String(name),
		CallerReference: aws.String(fmt.Sprintf("zonesync-%s-%d", name, time.Now().UnixNano())),
	}
	if opts.VPCID != "" {
		input.HostedZoneConfig = &types.HostedZoneConfig{PrivateZone: true}
		input.VPC = &types.VPC{
			VPCId:     aws.String(opts.VPCID),
			VPCRegion: types.VPCRegion(opts.VPCRegion),
		}
	}

	out, err := p.client.CreateHostedZone(ctx, input)
	if err != nil {
		return domain.Zone{}, mapError(err)
	}
	return domain.Zone{
		Name: aws.ToString(out.HostedZone.Name),
		ID:   strings.TrimPrefix(aws.ToString(out.HostedZone.Id), zoneIDPrefix),
	}, nil
}

// DeleteZone deletes the hosted zone by ID.
func (p *Provider) DeleteZone(ctx context.Context, zoneID string) error {
	_, err := p.client.DeleteHostedZone(ctx, &route53.DeleteHostedZoneInput{
		Id: aws.String(zoneID),
	})
	return mapError(err)
}
