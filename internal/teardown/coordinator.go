package teardown

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"github.com/eleven-am/vpcreaper/internal/domain"
)

// Coordinator fans region processing out across a bounded worker pool.
// Regions fail independently; a panic in one worker is contained and
// reported as that region's failed outcome.
type Coordinator struct {
	newClient ClientFactory
	opts      domain.Options
	cfg       runConfig
}

func NewCoordinator(newClient ClientFactory, opts domain.Options, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		newClient: newClient,
		opts:      opts,
		cfg:       runConfig{dryRun: opts.DryRun, logger: logger},
	}
}

// Run processes every region and returns one outcome per region. Workers
// deliver results over a channel to this single collector; no shared map
// is written from multiple goroutines. With a Timeout set, regions still
// in flight at the deadline are reported timed-out and abandoned.
func (c *Coordinator) Run(ctx context.Context, regions []string) map[string]domain.TeardownOutcome {
	results := make(map[string]domain.TeardownOutcome, len(regions))
	if len(regions) == 0 {
		return results
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	type regionResult struct {
		region  string
		outcome domain.TeardownOutcome
	}
	// Buffered to the region count so workers never block on delivery.
	ch := make(chan regionResult, len(regions))

	limit := c.opts.Concurrency
	if limit <= 0 {
		limit = len(regions)
	}

	var g errgroup.Group
	g.SetLimit(limit)
	go func() {
		for _, region := range regions {
			region := region
			g.Go(func() error {
				ch <- regionResult{region: region, outcome: c.safeProcess(ctx, region)}
				return nil
			})
		}
		g.Wait()
		close(ch)
	}()

	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return results
			}
			results[r.region] = r.outcome
		case <-ctx.Done():
		drain:
			for {
				select {
				case r, ok := <-ch:
					if !ok {
						break drain
					}
					results[r.region] = r.outcome
				default:
					break drain
				}
			}
			for _, region := range regions {
				if _, ok := results[region]; !ok {
					results[region] = domain.TeardownOutcome{
						Region: region,
						Status: domain.StatusTimedOut,
						Err:    "abandoned after run deadline",
					}
				}
			}
			return results
		}
	}
}

func (c *Coordinator) safeProcess(ctx context.Context, region string) (outcome domain.TeardownOutcome) {
	defer func() {
		if r := recover(); r != nil {
			c.cfg.logger.Error("panic while processing region",
				"region", region, "panic", r, "stack", string(debug.Stack()))
			outcome = domain.TeardownOutcome{
				Region: region,
				Status: domain.StatusFailed,
				Err:    fmt.Sprintf("panic: %v", r),
			}
		}
	}()
	return processRegion(ctx, region, c.newClient, c.cfg)
}
