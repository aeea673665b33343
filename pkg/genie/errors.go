package genie

import "errors"

var (
	// ErrInvalidLength is returned when a code is not 6 or 9 digits long, or a
	// field passed to the encoder has the wrong number of digits.
	ErrInvalidLength = errors.New("invalid code length")

	// ErrInvalidCharacters is returned when a non-hexadecimal character is present.
	ErrInvalidCharacters = errors.New("invalid characters (only 0-9, A-F)")

	// ErrIntegrityCheckFailed is returned when digits 7 and 8 of a 9-digit code
	// do not satisfy the integrity relation.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrMissingValue is returned when the replacement value is absent.
	ErrMissingValue = errors.New("missing value")

	// ErrMissingAddress is returned when the address is absent.
	ErrMissingAddress = errors.New("missing address")
)

// Kind returns a short, stable name for the codec error wrapped by err, or
// "unknown" when err does not wrap one. Used for metrics labels.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrInvalidCharacters):
		return "invalid_characters"
	case errors.Is(err, ErrIntegrityCheckFailed):
		return "integrity_check_failed"
	case errors.Is(err, ErrMissingValue):
		return "missing_value"
	case errors.Is(err, ErrMissingAddress):
		return "missing_address"
	default:
		return "unknown"
	}
}
