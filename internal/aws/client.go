package aws

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

func newRetryer() aws.Retryer {
	return retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 5
		o.MaxBackoff = 30 * time.Second
		o.Backoff = retry.NewExponentialJitterBackoff(o.MaxBackoff)
		o.RateLimiter = ratelimit.None
	})
}

// NewEC2Client returns a region-scoped EC2 client. Each region task gets
// its own client; nothing is shared across tasks.
func NewEC2Client(cfg aws.Config, region string) *ec2.Client {
	retryer := newRetryer()
	return ec2.NewFromConfig(cfg, func(o *ec2.Options) {
		o.Region = region
		o.Retryer = retryer
	})
}
