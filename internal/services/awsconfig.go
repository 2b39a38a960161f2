// Package services builds the provider client configuration from stored
// credentials and caller options.
package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/bobby/zonesync/internal/services/auth"
)

// LoadAWSConfig builds the AWS configuration for one run. A credential pair
// stored with "zonesync auth login" takes precedence; otherwise the default
// AWS credential chain (environment, shared config, instance role) applies.
// An empty region defers to the chain as well.
func LoadAWSConfig(ctx context.Context, store auth.Store, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	accessKey, accessErr := store.GetSecret(auth.AccessKeyEntry)
	secretKey, secretErr := store.GetSecret(auth.SecretKeyEntry)
	if accessErr == nil && secretErr == nil && accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}
