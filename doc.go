// Package fixbv provides a scaled integer ("fixed point") number for
// modelling hardware register quantities.
//
// A Number is a stored integer and a power of two shift:
//
//  real = stored * 2 ^ shift
//
// The fraction length of a number is -shift. For example:
//
//  1.5  = 3 * 2^-1
//  1600 = 100 * 2^4
//
// All arithmetic is exact. Stored integers are arbitrary precision and no
// rounding or overflow handling is performed while computing; those only
// make sense once a value is committed to a finite register, which is the
// job of whatever consumes StoredInteger, Shift, Min, Max and BitWidth.
//
// Grid
//
// Every number lies on the grid of multiples of its resolution, 2^shift.
// Binary operations first move both operands onto the finer of their two
// grids (see package grid) so no precision is ever lost.
//
// Bounds
//
// A number may carry stored integer bounds [min, max). They define the bit
// width of the register the number is destined for and are checked after
// every mutation. Results of arithmetic are always unbounded: only a worst
// case range analysis could set them correctly.
//
// Real input
//
// By default a number refuses real (fractional) input. With AcceptReal the
// input is quantized onto the grid as
//
//  stored = floor(x * 2^-shift + 1/2)
//
// which rounds half way cases toward positive infinity.
//
// Bits
//
// Bit and slice indices are real bit positions: index i addresses stored
// bit i - shift. Index 0 is the bit just above the binary point.
//
// Persistence
//
// MarshalText writes the canonical "<stored> * 2**<shift>" form read back by
// Parse. MarshalBinary writes a BSV fixed block (package fixed) followed by
// the two bounds (package integer), Null when absent. Flags are never
// persisted.
//
// Unsupported operations
//
// True division is rejected since it is not generally exact on a grid.
// Bitwise AND, OR and XOR are rejected because it is ambiguous whether they
// apply to the stored integer or the real value; use StoredInteger instead.
package fixbv
