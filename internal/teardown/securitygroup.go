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

// deleteSecurityGroups deletes the VPC's security groups except the
// provider-created "default" group, which cannot be deleted.
func deleteSecurityGroups(ctx context.Context, api internalaws.EC2API, vpcID string, cfg runConfig) domain.ResourceResult {
	res := domain.ResourceResult{Kind: domain.KindSecurityGroup}

	paginator := ec2.NewDescribeSecurityGroupsPaginator(api, &ec2.DescribeSecurityGroupsInput{
		Filters: vpcFilter(vpcID),
	})
	sgs, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeSecurityGroupsOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeSecurityGroupsOutput) []ec2types.SecurityGroup {
			return out.SecurityGroups
		},
	)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("describe security groups for vpc %s: %v", vpcID, err))
		return res
	}
	res.Found = len(sgs)

	for _, sg := range sgs {
		sgID := aws.ToString(sg.GroupId)

		if aws.ToString(sg.GroupName) == "default" {
			cfg.logger.Info("skipping default security group", "sg", sgID, "vpc", vpcID)
			res.SkippedProtected++
			continue
		}

		if cfg.dryRun {
			cfg.logger.Info("would delete security group", "sg", sgID, "vpc", vpcID)
			res.Deleted++
			continue
		}

		if _, err := api.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{
			GroupId: aws.String(sgID),
		}); err != nil {
			if internalaws.IsNotFound(err) {
				cfg.logger.Info("security group already deleted", "sg", sgID)
				res.Deleted++
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("delete security group %s: %v", sgID, err))
			continue
		}
		cfg.logger.Info("deleted security group", "sg", sgID, "vpc", vpcID)
		res.Deleted++
	}
	return res
}
