package domain

import "time"

// Options configures a full run. It is threaded explicitly through the
// coordinator into every deleter call; nothing here is process-global, so
// concurrent region tasks cannot race on it.
type Options struct {
	// Profile is the shared-config credential profile to load. Empty uses
	// the default credential chain.
	Profile string

	// RoleARN, when set, is assumed before any region is touched.
	RoleARN string

	// Regions limits the run to an explicit set. Empty means every region
	// the account can see.
	Regions []string

	// DryRun suppresses all mutating calls; intended deletions are logged
	// and counted instead.
	DryRun bool

	// Timeout is an overall run deadline. Regions still in flight when it
	// expires are reported as timed-out and abandoned. Zero means none.
	Timeout time.Duration

	// Concurrency caps the number of regions processed in parallel.
	// Zero or negative means one worker per region.
	Concurrency int
}
