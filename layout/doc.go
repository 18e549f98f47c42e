// SPDX-License-Identifier: MIT

// Package layout plans the byte layout of a single-block row-major matrix.
//
// A block of TotalBytes is split into three consecutive segments:
//
//	[ row table : Rows words ][ padding : PaddingBytes ][ data : Rows*Cols elements ]
//
// The row table holds one machine word per row; the padding brings the data
// segment to a multiple of the element alignment. Every size is derived with
// checked arithmetic, so a Plan either describes a representable block or New
// returns ErrSizeOverflow.
//
// Planning is pure: no memory is allocated here.
package layout
