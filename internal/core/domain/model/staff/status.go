package staff

import (
	"fmt"
	"strings"

	"tastyfood/internal/pkg/errs"
)

// Status is the employment status of a staff member.
type Status string

const (
	Active   Status = "Active"
	Inactive Status = "Inactive"
)

// ParseStatus accepts "Active" or "Inactive" in any letter case. A blank value
// defaults to Active.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return Active, nil
	case "inactive":
		return Inactive, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is neither Active nor Inactive", s))
	}
}

func (s Status) String() string {
	return string(s)
}
