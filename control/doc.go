// Package control provides the BSV blocking structure used to persist
// scaled integers.
//
// BSV control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the field
// contains). The intention is to minimize signaling overhead and pack as much
// data directly into the control block as possible.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Data and size information is expected
// to be extracted by masking off the fixed bits. This is only the first byte
// (several control block types are multi-byte sequences).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                                      |
//  |---------------|---------------||----------------|------------------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                                     |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes; 2^(64*8) values                      |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 2^13 = 8192 values                         |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 2^20 = 1048576 values                    |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes size; 2^(8*8) bytes                    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                                          |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (e.g. an unbounded number's bound)        |
//  |---------------|---------------||----------------|------------------------------------------------------|
//
// The remaining prefixes (containers and skips in the full BSV format) are
// not produced here and are rejected by the decoder.
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks allow for 7 bits of data to be encoded directly into the block.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data
//  2. Data
//
// Data + 1 and Data + 2 blocks are two and three byte sequences containing
// 13 and 20 bits of data respectively.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data
//  3. Data
//
// Null blocks indicate that the field is absent. A scaled integer without
// bounds persists both of its bounds as Null blocks.
package control
