/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import (
	"errors"
	"fmt"
)

// unitsNormalization is the reference scale that glyph measurements are
// normalized to: 1000 units per em, the PDF glyph space convention.
const unitsNormalization = 1000

// Recognized sfnt version markers at the start of a table directory.
const (
	sfntVersionTrueType = 0x00010000 // TrueType outlines.
	sfntVersionCFF      = 0x4F54544F // 'OTTO', OpenType with CFF data.
)

var (
	// ErrInvalidCollection indicates that a TrueType collection was requested
	// but the data does not start with a valid 'ttcf' header, or the requested
	// member index is negative.
	ErrInvalidCollection = errors.New("not a valid ttc file")

	// ErrIndexOutOfRange indicates a collection member index at or beyond the
	// declared member count.
	ErrIndexOutOfRange = errors.New("font index out of range")

	// ErrInvalidSignature indicates that the table directory does not start
	// with one of the recognized sfnt version markers.
	ErrInvalidSignature = errors.New("not a valid ttf or otf file")

	errRangeCheck = errors.New("range check error")
)

// MissingTableError is returned when a table that is required for correct
// operation is absent from the table directory.
type MissingTableError struct {
	Tag string
}

func (e MissingTableError) Error() string {
	return fmt.Sprintf("font table %q does not exist", e.Tag)
}
