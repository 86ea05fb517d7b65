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

// deleteInternetGateways detaches and deletes every internet gateway
// attached to the VPC. Detach must precede delete; both phases are
// attempted per gateway so a detach failure still surfaces the delete
// failure alongside it.
func deleteInternetGateways(ctx context.Context, api internalaws.EC2API, vpcID string, cfg runConfig) domain.ResourceResult {
	res := domain.ResourceResult{Kind: domain.KindInternetGateway}

	paginator := ec2.NewDescribeInternetGatewaysPaginator(api, &ec2.DescribeInternetGatewaysInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("attachment.vpc-id"), Values: []string{vpcID}},
		},
	})
	igws, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeInternetGatewaysOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeInternetGatewaysOutput) []ec2types.InternetGateway {
			return out.InternetGateways
		},
	)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("describe internet gateways for vpc %s: %v", vpcID, err))
		return res
	}
	res.Found = len(igws)

	for _, igw := range igws {
		igwID := aws.ToString(igw.InternetGatewayId)

		if cfg.dryRun {
			cfg.logger.Info("would detach and delete internet gateway", "igw", igwID, "vpc", vpcID)
			res.Deleted++
			continue
		}

		if _, err := api.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
			VpcId:             aws.String(vpcID),
		}); err != nil && !internalaws.IsNotAttached(err) {
			res.Errors = append(res.Errors, fmt.Sprintf("detach internet gateway %s: %v", igwID, err))
		}

		if _, err := api.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
			InternetGatewayId: aws.String(igwID),
		}); err != nil {
			if internalaws.IsNotFound(err) {
				cfg.logger.Info("internet gateway already deleted", "igw", igwID)
				res.Deleted++
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("delete internet gateway %s: %v", igwID, err))
			continue
		}
		cfg.logger.Info("deleted internet gateway", "igw", igwID, "vpc", vpcID)
		res.Deleted++
	}
	return res
}
