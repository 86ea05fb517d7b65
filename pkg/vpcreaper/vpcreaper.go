package vpcreaper

import (
	"context"
	"fmt"
	"log/slog"

	internalaws "github.com/eleven-am/vpcreaper/internal/aws"
	"github.com/eleven-am/vpcreaper/internal/domain"
	"github.com/eleven-am/vpcreaper/internal/teardown"
)

// Options configures a run. See domain.Options for field semantics.
type Options = domain.Options

// Outcome is the per-region teardown record.
type Outcome = domain.TeardownOutcome

// Report is the result of one full run.
type Report struct {
	AccountID string
	Outcomes  map[string]Outcome
}

// Failed reports whether any region ended in a failed state. Skips,
// deletions and graceful timeouts are not failures.
func (r Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}

// regionSeedForListing is used only to enumerate regions when no explicit
// set is given; DescribeRegions answers identically everywhere.
const regionSeedForListing = "us-east-1"

// Run deletes the account's default VPC in every target region. The only
// fatal error is failing to obtain credentials or the region list; all
// per-region failures are folded into the report.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := internalaws.LoadConfig(ctx, opts.Profile)
	if err != nil {
		return Report{}, err
	}
	if opts.RoleARN != "" {
		cfg, err = internalaws.AssumeRole(ctx, cfg, opts.RoleARN)
		if err != nil {
			return Report{}, err
		}
	}

	regions := opts.Regions
	if len(regions) == 0 {
		regions, err = internalaws.ListRegions(ctx, internalaws.NewEC2Client(cfg, regionSeedForListing))
		if err != nil {
			return Report{}, fmt.Errorf("enumerate regions: %w", err)
		}
	}

	coord := teardown.NewCoordinator(func(region string) (internalaws.EC2API, error) {
		return internalaws.NewEC2Client(cfg, region), nil
	}, opts, logger)

	return Report{
		AccountID: internalaws.CallerAccountID(ctx, cfg),
		Outcomes:  coord.Run(ctx, regions),
	}, nil
}
