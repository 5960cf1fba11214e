package commands

import (
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

// orderNumberFromRequest parses an order number supplied by a caller. A malformed number
// cannot address any stored order, so it is reported as not found rather than as a
// format violation of stored data.
func orderNumberFromRequest(raw string) (kernel.OrderNumber, error) {
	number, err := kernel.ParseOrderNumber(raw)
	if err != nil {
		return kernel.OrderNumber{}, errs.NewObjectNotFoundErrorWithCause("order", raw, err)
	}
	return number, nil
}
