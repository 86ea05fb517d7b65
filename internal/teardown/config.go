package teardown

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// runConfig is threaded from the coordinator into every deleter call.
// Dry-run is carried here, never as process state, so concurrent region
// tasks cannot race on it.
type runConfig struct {
	dryRun bool
	logger *slog.Logger
}

func vpcFilter(vpcID string) []ec2types.Filter {
	return []ec2types.Filter{
		{Name: aws.String("vpc-id"), Values: []string{vpcID}},
	}
}
