package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

// UsernameSequenceDigits is the minimum zero-padded width of a username suffix.
const UsernameSequenceDigits = 2

// ErrUsernameIsNotConstructed is returned when a zero-value Username is used.
var ErrUsernameIsNotConstructed = errs.NewValueIsRequiredError(
	"username must be created via NewUsername")

// Username identifies a staff account and its login credential. It is derived from the
// staff member's last name: the lower-cased letters of the last name followed by a
// sequence padded to two digits ("smith01", "smith02", ...).
type Username struct { //nolint:recvcheck //using for validation
	prefix   string
	sequence int
	guard    guard.ConstructorGuard
}

// UsernamePrefix derives the username prefix from a last name: letters only, lower case.
// "O'Brien" becomes "obrien" and "van Dyke" becomes "vandyke".
func UsernamePrefix(lastName string) (string, error) {
	var b strings.Builder
	for _, r := range lastName {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"lastName",
			fmt.Errorf("%q contains no letters", lastName),
		)
	}
	return b.String(), nil
}

// NewUsername creates a username from an already derived prefix and a positive sequence.
func NewUsername(prefix string, sequence int) (Username, error) {
	if prefix == "" {
		return Username{}, errs.NewValueIsRequiredError("username prefix")
	}
	if sequence < 1 {
		return Username{}, errs.NewValueIsOutOfRangeError("username sequence", sequence, 1, "unbounded")
	}
	return Username{prefix: prefix, sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

// ParseUsernameSequence extracts the numeric suffix of username when it consists of
// prefix followed only by decimal digits. Any other shape (a longer name sharing the
// prefix, a non-numeric suffix, a legacy value) reports ok=false and is ignored by
// the allocator rather than treated as an error.
func ParseUsernameSequence(prefix, username string) (int, bool) {
	suffix, ok := strings.CutPrefix(username, prefix)
	if !ok || !isDigits(suffix) {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate reports whether the username was created through its constructor.
func (u Username) Validate() error {
	return u.guard.Validate(ErrUsernameIsNotConstructed)
}

// Prefix returns the last-name part.
func (u Username) Prefix() string {
	return u.prefix
}

// Sequence returns the numeric part.
func (u Username) Sequence() int {
	return u.sequence
}

// String renders the username, e.g. "smith01".
func (u Username) String() string {
	return fmt.Sprintf("%s%0*d", u.prefix, UsernameSequenceDigits, u.sequence)
}

// ParseUsername rebuilds a stored username. The value must be a non-empty prefix
// followed by a zero-padded sequence and render back to itself; anything else is an
// IdentifierFormatError.
func ParseUsername(s string) (Username, error) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	prefix, digits := s[:i], s[i:]
	if prefix == "" || digits == "" {
		return Username{}, errs.NewIdentifierFormatError("username", s)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return Username{}, errs.NewIdentifierFormatErrorWithCause("username", s, err)
	}
	u, err := NewUsername(prefix, seq)
	if err != nil {
		return Username{}, errs.NewIdentifierFormatErrorWithCause("username", s, err)
	}
	if u.String() != s {
		return Username{}, errs.NewIdentifierFormatError("username", s)
	}
	return u, nil
}
