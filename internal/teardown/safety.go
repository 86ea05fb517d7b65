package teardown

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	internalaws "github.com/eleven-am/vpcreaper/internal/aws"
)

// vpcInUse reports whether the VPC has any attached network interfaces.
// Most services attach an ENI, so a non-empty list is a conservative proxy
// for "something still lives here". A query failure means the gate cannot
// give a safe answer and is propagated.
func vpcInUse(ctx context.Context, api internalaws.EC2API, vpcID string) (bool, error) {
	paginator := ec2.NewDescribeNetworkInterfacesPaginator(api, &ec2.DescribeNetworkInterfacesInput{
		Filters: vpcFilter(vpcID),
	})
	enis, err := internalaws.CollectPages(
		ctx,
		paginator.HasMorePages,
		func(ctx context.Context) (*ec2.DescribeNetworkInterfacesOutput, error) {
			return paginator.NextPage(ctx)
		},
		func(out *ec2.DescribeNetworkInterfacesOutput) []ec2types.NetworkInterface {
			return out.NetworkInterfaces
		},
	)
	if err != nil {
		return false, fmt.Errorf("describe network interfaces for vpc %s: %w", vpcID, err)
	}
	return len(enis) > 0, nil
}
