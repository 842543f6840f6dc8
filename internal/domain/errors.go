package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UnsupportedYearError is returned when a rule lookup names a tax year the
// repository has no snapshot for.
type UnsupportedYearError struct {
	Year      int
	Supported []int
}

func (e *UnsupportedYearError) Error() string {
	years := make([]string, len(e.Supported))
	for i, y := range e.Supported {
		years[i] = strconv.Itoa(y)
	}
	return fmt.Sprintf("unsupported tax year %d: supported years are %s", e.Year, strings.Join(years, ", "))
}

// InvalidInputError is returned when a profile or calculator input fails
// shape validation (negative where forbidden, unknown enum value).
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}
