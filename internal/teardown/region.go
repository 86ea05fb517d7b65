package teardown

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	internalaws "github.com/eleven-am/vpcreaper/internal/aws"
	"github.com/eleven-am/vpcreaper/internal/domain"
)

// ClientFactory builds a region-scoped EC2 client. Injected so tests can
// substitute mocks per region.
type ClientFactory func(region string) (internalaws.EC2API, error)

// processRegion resolves the region's default VPC and tears it down.
// Client and attribute failures (a region disabled by SCP, for example)
// become a failed outcome rather than an error, so other regions proceed.
func processRegion(ctx context.Context, region string, newClient ClientFactory, cfg runConfig) domain.TeardownOutcome {
	api, err := newClient(region)
	if err != nil {
		return domain.TeardownOutcome{
			Region: region,
			Status: domain.StatusFailed,
			Err:    fmt.Sprintf("create client for %s: %v", region, err),
		}
	}

	vpcID, err := defaultVPC(ctx, api)
	if err != nil {
		return domain.TeardownOutcome{
			Region: region,
			Status: domain.StatusFailed,
			Err:    fmt.Sprintf("resolve default vpc in %s: %v", region, err),
		}
	}
	if vpcID == "" || vpcID == "none" {
		cfg.logger.Info("no default vpc", "region", region)
		return domain.TeardownOutcome{Region: region, Status: domain.StatusSkippedNoVPC}
	}

	return teardownVPC(ctx, api, region, vpcID, cfg)
}

// defaultVPC queries the account's default-vpc attribute for the client's
// region. Returns "" when the attribute carries no value.
func defaultVPC(ctx context.Context, api internalaws.EC2API) (string, error) {
	out, err := api.DescribeAccountAttributes(ctx, &ec2.DescribeAccountAttributesInput{
		AttributeNames: []ec2types.AccountAttributeName{ec2types.AccountAttributeNameDefaultVpc},
	})
	if err != nil {
		return "", fmt.Errorf("describe account attributes: %w", err)
	}

	for _, attr := range out.AccountAttributes {
		for _, value := range attr.AttributeValues {
			if v := aws.ToString(value.AttributeValue); v != "" {
				return v, nil
			}
		}
	}
	return "", nil
}
