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

// deleteNetworkACLs deletes every non-default network ACL in the VPC. The
// default ACL cannot be deleted and is skipped.
func deleteNetworkACLs(ctx context.Context, api internalaws.EC2API, vpcID string, cfg runConfig) domain.ResourceResult {
	res := domain.ResourceResult{Kind: domain.KindNetworkACL}

	paginator := ec2.NewDescribeNetworkAclsPaginator(api, &ec2.DescribeNetworkAclsInput{
		Filters: vpcFilter(vpcID),
	})
	acls, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeNetworkAclsOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeNetworkAclsOutput) []ec2types.NetworkAcl {
			return out.NetworkAcls
		},
	)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("describe network acls for vpc %s: %v", vpcID, err))
		return res
	}
	res.Found = len(acls)

	for _, acl := range acls {
		aclID := aws.ToString(acl.NetworkAclId)

		if aws.ToBool(acl.IsDefault) {
			cfg.logger.Info("skipping default network acl", "acl", aclID, "vpc", vpcID)
			res.SkippedProtected++
			continue
		}

		if cfg.dryRun {
			cfg.logger.Info("would delete network acl", "acl", aclID, "vpc", vpcID)
			res.Deleted++
			continue
		}

		if _, err := api.DeleteNetworkAcl(ctx, &ec2.DeleteNetworkAclInput{
			NetworkAclId: aws.String(aclID),
		}); err != nil {
			if internalaws.IsNotFound(err) {
				cfg.logger.Info("network acl already deleted", "acl", aclID)
				res.Deleted++
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("delete network acl %s: %v", aclID, err))
			continue
		}
		cfg.logger.Info("deleted network acl", "acl", aclID, "vpc", vpcID)
		res.Deleted++
	}
	return res
}
