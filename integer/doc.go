// Package integer provides arbitrary precision signed integers encoded as BSV
// data blocks.
//
// Signed integers are laid out big-endian with a trailing sign bit (aka
// zigzag):
//
//  +0 -> 0b0000_0000
//  +1 -> 0b0000_0010
//  -1 -> 0b0000_0011
//
// Zero is always encoded as a single zero byte so that it can be carried by
// a Data control block.
package integer

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")
