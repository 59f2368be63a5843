package util

import (
	"fmt"
	"strconv"
)

// ValidateAccountID checks that id looks like a DNSimple account ID:
// a positive decimal integer with no sign or surrounding whitespace.
func ValidateAccountID(id string) error {
	if id == "" {
		return fmt.Errorf("account ID cannot be empty")
	}

	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return fmt.Errorf("account ID %q must be numeric", id)
		}
	}

	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("account ID %q is out of range", id)
	}
	if n == 0 {
		return fmt.Errorf("account ID must be greater than zero")
	}

	return nil
}
