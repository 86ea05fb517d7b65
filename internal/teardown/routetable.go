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

// deleteRouteTables deletes the VPC's route tables, skipping the main
// table. A table with any main association is never user-deletable.
func deleteRouteTables(ctx context.Context, api internalaws.EC2API, vpcID string, cfg runConfig) domain.ResourceResult {
	res := domain.ResourceResult{Kind: domain.KindRouteTable}

	paginator := ec2.NewDescribeRouteTablesPaginator(api, &ec2.DescribeRouteTablesInput{
		Filters: vpcFilter(vpcID),
	})
	rtbs, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeRouteTablesOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeRouteTablesOutput) []ec2types.RouteTable {
			return out.RouteTables
		},
	)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("describe route tables for vpc %s: %v", vpcID, err))
		return res
	}
	res.Found = len(rtbs)

	for _, rtb := range rtbs {
		rtbID := aws.ToString(rtb.RouteTableId)

		if isMainRouteTable(rtb) {
			cfg.logger.Info("skipping main route table", "rtb", rtbID, "vpc", vpcID)
			res.SkippedProtected++
			continue
		}

		if cfg.dryRun {
			cfg.logger.Info("would delete route table", "rtb", rtbID, "vpc", vpcID)
			res.Deleted++
			continue
		}

		if _, err := api.DeleteRouteTable(ctx, &ec2.DeleteRouteTableInput{
			RouteTableId: aws.String(rtbID),
		}); err != nil {
			if internalaws.IsNotFound(err) {
				cfg.logger.Info("route table already deleted", "rtb", rtbID)
				res.Deleted++
				continue
			}
			res.Errors = append(res.Errors, fmt.Sprintf("delete route table %s: %v", rtbID, err))
			continue
		}
		cfg.logger.Info("deleted route table", "rtb", rtbID, "vpc", vpcID)
		res.Deleted++
	}
	return res
}

// isMainRouteTable reports whether any association marks the table as the
// VPC's main table, regardless of association order.
func isMainRouteTable(rtb ec2types.RouteTable) bool {
	for _, assoc := range rtb.Associations {
		if aws.ToBool(assoc.Main) {
			return true
		}
	}
	return false
}
