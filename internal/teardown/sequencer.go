package teardown

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	internalaws "github.com/eleven-am/vpcreaper/internal/aws"
	"github.com/eleven-am/vpcreaper/internal/domain"
)

type deleterFunc func(context.Context, internalaws.EC2API, string, runConfig) domain.ResourceResult

// deleters run in dependency order: the gateway detaches first, route
// tables and ACLs may reference subnets, and the VPC itself goes last.
var deleters = []deleterFunc{
	deleteInternetGateways,
	deleteSubnets,
	deleteRouteTables,
	deleteNetworkACLs,
	deleteSecurityGroups,
}

// teardownVPC removes one VPC and its dependents. The safety gate runs
// first; a VPC with attached interfaces is never touched. Each deleter's
// result is recorded even on partial failure, and a failed kind does not
// stop later kinds or the final VPC delete attempt (best-effort draining).
func teardownVPC(ctx context.Context, api internalaws.EC2API, region, vpcID string, cfg runConfig) domain.TeardownOutcome {
	outcome := domain.TeardownOutcome{Region: region, VpcID: vpcID}

	inUse, err := vpcInUse(ctx, api, vpcID)
	if err != nil {
		outcome.Status = domain.StatusFailed
		outcome.Err = err.Error()
		return outcome
	}
	if inUse {
		cfg.logger.Info("vpc has attached network interfaces, leaving it alone", "vpc", vpcID, "region", region)
		outcome.Status = domain.StatusSkippedInUse
		return outcome
	}

	for _, del := range deleters {
		outcome.Resources = append(outcome.Resources, del(ctx, api, vpcID, cfg))
	}

	if cfg.dryRun {
		cfg.logger.Info("would delete vpc", "vpc", vpcID, "region", region)
		outcome.Status = domain.StatusDeleted
		return outcome
	}

	if _, err := api.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: aws.String(vpcID)}); err != nil {
		outcome.Status = domain.StatusFailed
		outcome.Err = fmt.Sprintf("delete vpc %s: %v", vpcID, err)
		return outcome
	}
	cfg.logger.Info("deleted vpc", "vpc", vpcID, "region", region)
	outcome.Status = domain.StatusDeleted
	return outcome
}
