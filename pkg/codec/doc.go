// Package codec defines the group-code type table and the tagged value
// cell for the DXF drawing-exchange format.
//
// DXF multiplexes many value types over a single 2-byte group code. The
// code carries no explicit type or length byte; its numeric range alone
// determines how the following bytes (binary form) or the following line
// (text form) must be decoded. This package is the single source of truth
// for that mapping.
//
// # Group Code Ranges
//
// Codes map to type families in disjoint numeric ranges:
//
//	0-9, 100-102, 300-309, 410-419, 430-439, 470-479,
//	1000-1003, 1005-1009                                string
//	10-59, 110-149, 210-239, 460-469, 1010-1059         double
//	60-79, 170-179, 270-289, 370-389, 400-409, 1060-1070 int16
//	90-99, 420-429, 440-459, 1071                       int32
//	160-169                                             int64
//	105, 320-369, 390-399, 480-481                      handle
//	290-299                                             bool
//	310-319, 1004                                       binary chunk
//	999                                                 comment
//
// Any code outside these ranges is unrecognized and must be treated as a
// format error by readers. Code 999 is a comment record: legal in the text
// form, illegal in the binary form.
//
// # Values
//
// A Value is a tagged union holding exactly one decoded payload. The kind
// stored is fully determined by the group code that produced it, and every
// accessor checks the kind before returning, so reading a Value through
// the wrong accessor fails with a TypeMismatchError instead of returning a
// reinterpreted payload.
//
// # Handles
//
// Handle values are hexadecimal identifiers referencing other records.
// They are canonicalized on decode: parsed base-16 and re-rendered as
// uppercase hex with no leading zeros, so "00a3" and "A3" compare equal.
package codec
