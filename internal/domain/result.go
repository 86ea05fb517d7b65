package domain

// ResourceKind identifies one of the fixed dependency kinds a default VPC
// carries. The teardown order over these kinds is defined by the sequencer.
type ResourceKind string

const (
	KindInternetGateway ResourceKind = "internet-gateway"
	KindSubnet          ResourceKind = "subnet"
	KindRouteTable      ResourceKind = "route-table"
	KindNetworkACL      ResourceKind = "network-acl"
	KindSecurityGroup   ResourceKind = "security-group"
)

// ResourceResult records what happened to every resource of one kind
// within a single VPC teardown.
type ResourceResult struct {
	Kind             ResourceKind
	Found            int
	Deleted          int
	SkippedProtected int
	Errors           []string
}

func (r ResourceResult) Failed() bool {
	return len(r.Errors) > 0
}

// Status is the final state of one region's teardown.
type Status string

const (
	StatusSkippedNoVPC Status = "skipped-no-vpc"
	StatusSkippedInUse Status = "skipped-in-use"
	StatusDeleted      Status = "deleted"
	StatusFailed       Status = "failed"
	StatusTimedOut     Status = "timed-out"
)

// TeardownOutcome is the per-region record returned by the coordinator.
// Resources is ordered by teardown stage; Err carries the region-level
// cause when Status is failed.
type TeardownOutcome struct {
	Region    string
	VpcID     string
	Status    Status
	Resources []ResourceResult
	Err       string
}

func (o TeardownOutcome) Failed() bool {
	return o.Status == StatusFailed
}
