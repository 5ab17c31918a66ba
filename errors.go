package dict

import "github.com/cockroachdb/errors"

var (
	// ErrKeyNotFound marks a Get or Remove of a key that is not in the table.
	ErrKeyNotFound = errors.New("dict: key not found")

	// ErrDestroyed marks any use of a table after Destroy.
	ErrDestroyed = errors.New("dict: table destroyed")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("dict: invalid config")
)

// Contract violations are not recoverable errors: the table panics with an
// assertion failure marked with one of the sentinels above, so a recovered
// value still matches errors.Is.
func violation(sentinel error, format string, args ...any) {
	panic(errors.Mark(errors.AssertionFailedf(format, args...), sentinel))
}
