package aws

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrorCode extracts the EC2 API error code, or "" for non-API errors.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err says the resource is already gone.
// EC2 uses per-type codes (InvalidSubnetID.NotFound, InvalidGroup.NotFound,
// InvalidVpcID.NotFound, ...) that all share the suffix.
func IsNotFound(err error) bool {
	return strings.HasSuffix(ErrorCode(err), ".NotFound")
}

// IsNotAttached reports whether a detach failed because the internet
// gateway was already detached.
func IsNotAttached(err error) bool {
	return ErrorCode(err) == "Gateway.NotAttached"
}

// IsAccessDenied reports whether err is a permission failure.
func IsAccessDenied(err error) bool {
	return ErrorCode(err) == "UnauthorizedOperation"
}
