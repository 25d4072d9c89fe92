// Package grid provides the two pure functions every scaled integer
// operation is built from: the minimal two's complement bit width of a
// single value and the lossless alignment of two values onto a common grid.
//
// A grid is the set of real values representable at a given shift:
//
//  real = value * 2 ^ shift
//
// Two values on different grids are aligned by moving the coarser one onto
// the finer grid. Only multiplication by a non-negative power of two is
// ever performed, so alignment never loses precision. For example:
//
//  100 * 2^10 and 10 * 2^2  ->  25600 * 2^2 and 10 * 2^2
package grid
