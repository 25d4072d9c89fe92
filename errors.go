package fixbv

import "github.com/zeebo/errs"

var (
	// RangeError is returned when a stored integer or bound falls outside
	// [min, max), or when a slice assignment does not fit its width.
	RangeError = errs.Class("fixbv: range")

	// UsageError is returned for invalid arguments: real input without
	// AcceptReal, malformed bounds or slice indices, non-integer shift or
	// power amounts, division and hashing.
	UsageError = errs.Class("fixbv: usage")

	// UnsupportedError is returned by operations that are deliberately not
	// implemented.
	UnsupportedError = errs.Class("fixbv: unsupported")
)
