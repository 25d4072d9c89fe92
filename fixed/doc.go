// Package fixed provides a base 2 fixed point number encoded as a single BSV
// data block.
//
// The equation for a fixed point number is:
//
//  number = value * 2 ^ shift
//
// Where value is an unscaled (stored) integer and shift is a base 2
// exponent. For example:
//
//  1.5 = 3 * 2^-1
//
// Shift may be up to ±(2^21 - 1). Value is unbounded.
//
// Encoding
//
// The number is laid out first by the unscaled integer value (with sign bit),
// then the shift value (with sign bit), and finally the last 2 bits are the
// shift size.
//
// Decoding is expected to use the BSV block to first read in the full data,
// discover the shift size from the last two bits, extract the shift (up to 3
// bytes total), and then the remaining bits are the value.
//
// All integers in the format are encoded big-endian with a trailing sign bit
// (aka zigzag).
//
// The shift size is encoded as two bits:
//
//  | 0 | 1 | Available Shift |
//  |-------|-----------------|
//  | 0 . 0 | No Shift        | remaining 6 bits of the last byte are used for value.
//  | 0 . 1 | ±2^5 Shift      | 1 byte, 6 bits of shift.
//  | 1 . 0 | ±2^13 Shift     | 2 bytes, 14 bits of shift.
//  | 1 . 1 | ±2^21 Shift     | 3 bytes, 22 bits of shift.
//  |-------|-----------------|
//  | 0 | 1 |
//
// Examples
//
// Integer 5 (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 | 0 . 1 . 0 . 1 . 0 | 0 . 0 | Data Control Block with value of +5, no shift.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 1.5 = 3 * 2^-1 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 0 . 1 | 0 . 0 . 1 . 1 | 0 | Data + 1 Control Block with value of +3.
//  |-------------------------------|
//  | 0 . 0 . 0 . 0 . 1 | 1 | 0 . 1 | ±2^5 Shift with shift of -1.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package fixed

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("fixed")
