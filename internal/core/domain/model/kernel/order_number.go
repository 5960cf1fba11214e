package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

const (
	// OrderNumberPrefix is the fixed two-letter prefix of every order number.
	OrderNumberPrefix = "FD"
	// OrderNumberDigits is the zero-padded width of the numeric suffix.
	OrderNumberDigits = 4
	// OrderNumberMinSequence is the sequence of the first order ever allocated.
	OrderNumberMinSequence = 1
	// OrderNumberMaxSequence is the largest sequence the fixed-width suffix can hold.
	OrderNumberMaxSequence = 9999
)

// ErrOrderNumberIsNotConstructed is returned when a zero-value OrderNumber is used.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or ParseOrderNumber")

// OrderNumber is the human-readable primary identifier of an order: the prefix "FD"
// followed by a four-digit zero-padded sequence ("FD0001").
//
// Because the suffix has a fixed width, lexicographic order of the rendered strings
// equals numeric order of the sequences. Repositories rely on this to find the most
// recent order with ORDER BY order_no DESC.
//
// Example:
//
//	first := kernel.FirstOrderNumber()
//	next, _ := first.Next()
//	fmt.Println(next) // FD0002
type OrderNumber struct { //nolint:recvcheck //using for validation
	sequence int
	guard    guard.ConstructorGuard
}

// NewOrderNumber creates an order number from its numeric sequence.
// The sequence must lie within [OrderNumberMinSequence..OrderNumberMaxSequence].
func NewOrderNumber(sequence int) (OrderNumber, error) {
	if sequence < OrderNumberMinSequence || sequence > OrderNumberMaxSequence {
		return OrderNumber{}, errs.NewValueIsOutOfRangeError(
			"order number sequence", sequence, OrderNumberMinSequence, OrderNumberMaxSequence)
	}
	return OrderNumber{sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

// FirstOrderNumber returns FD0001.
func FirstOrderNumber() OrderNumber {
	return OrderNumber{sequence: OrderNumberMinSequence, guard: guard.NewConstructorGuard()}
}

// ParseOrderNumber parses a rendered order number. Anything other than the exact
// prefix followed by exactly four decimal digits yields an IdentifierFormatError.
//
// Example:
//
//	n, err := kernel.ParseOrderNumber("FD0042")
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrIdentifierFormat)
//	}
//	fmt.Println(n.Sequence()) // 42
func ParseOrderNumber(s string) (OrderNumber, error) {
	suffix, ok := strings.CutPrefix(s, OrderNumberPrefix)
	if !ok || len(suffix) != OrderNumberDigits || !isDigits(suffix) {
		return OrderNumber{}, errs.NewIdentifierFormatError("order number", s)
	}

	sequence, err := strconv.Atoi(suffix)
	if err != nil {
		return OrderNumber{}, errs.NewIdentifierFormatErrorWithCause("order number", s, err)
	}

	n, err := NewOrderNumber(sequence)
	if err != nil {
		return OrderNumber{}, errs.NewIdentifierFormatErrorWithCause("order number", s, err)
	}
	return n, nil
}

// Validate reports whether the order number was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// Sequence returns the numeric part.
func (n OrderNumber) Sequence() int {
	return n.sequence
}

// Next returns the order number following n. It fails once the four-digit space is exhausted.
func (n OrderNumber) Next() (OrderNumber, error) {
	if err := n.Validate(); err != nil {
		return OrderNumber{}, err
	}
	return NewOrderNumber(n.sequence + 1)
}

// IsEqual compares two order numbers by sequence.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.sequence == other.sequence
}

// String renders the order number, e.g. "FD0007".
func (n OrderNumber) String() string {
	return fmt.Sprintf("%s%0*d", OrderNumberPrefix, OrderNumberDigits, n.sequence)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
