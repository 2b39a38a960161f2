package route53

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"

	"github.com/bobby/zonesync/internal/dns/domain"
)

// priorRequestCode is the error code Route53 returns while a previous
// mutation to the same zone is still being applied.
const priorRequestCode = "PriorRequestNotComplete"

// mapError translates SDK errors into domain terms. The busy condition gets
// the ErrZoneBusy sentinel so committers can retry it; every other API
// error surfaces with the provider's own message.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var busy *types.PriorRequestNotComplete
	if errors.As(err, &busy) {
		return fmt.Errorf("%w: %s", domain.ErrZoneBusy, aws.ToString(busy.Message))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == priorRequestCode {
			return fmt.Errorf("%w: %s", domain.ErrZoneBusy, apiErr.ErrorMessage())
		}
		return fmt.Errorf("route53: %s", apiErr.ErrorMessage())
	}

	return err
}
