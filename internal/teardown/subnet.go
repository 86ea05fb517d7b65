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

// deleteSubnets deletes every subnet in the VPC. Default-VPC subnets have
// no protected variant.
func deleteSubnets(ctx context.Context, api internalaws.EC2API, vpcID string, cfg runConfig) domain.ResourceResult {
	res := domain.ResourceResult{Kind: domain.KindSubnet}

	paginator := ec2.NewDescribeSubnetsPaginator(api, &ec2.DescribeSubnetsInput{
		Filters: vpcFilter(vpcID),
	})
	subnets, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeSubnetsOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeSubnetsOutput) []ec2types.Subnet {
			return out.Subnets
		},
	)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("describe subnets for vpc %s: %v", vpcID, err))
		return res
	}
	res.Found = len(subnets)

	for _, subnet := range subnets {
		subnetID := aws.ToString(subnet.SubnetId)

		if cfg.dryRun {
			cfg.logger.Info("would delete subnet", "subnet", subnetID, "vpc", vpcID)
			res.Deleted++
			continue
		}

		if _, err := api.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{
			SubnetId: aws.String(subnetID),
		}); err != nil {
			if internalaws.IsNotFound(err) {
				cfg.logger.Info("subnet already deleted", "subnet", subnetID)
				res.Deleted++
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("delete subnet %s: %v", subnetID, err))
			continue
		}
		cfg.logger.Info("deleted subnet", "subnet", subnetID, "vpc", vpcID)
		res.Deleted++
	}
	return res
}
