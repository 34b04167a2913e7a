package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingExcluded is wrapped by IntegrityError.
var ErrMissingExcluded = errors.New("excluded words missing from candidate list")

// IntegrityError lists every excluded word absent from the candidate list.
type IntegrityError struct {
	Missing []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%v (%d): %s", ErrMissingExcluded, len(e.Missing), strings.Join(e.Missing, ", "))
}

func (e *IntegrityError) Unwrap() error {
	return ErrMissingExcluded
}
