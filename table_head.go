/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "github.com/docpipe/opentype/internal/common"

// HeadTable holds the font header (head) fields used by the embedding
// pipeline: style flags, the design unit scale and the font bounding box.
type HeadTable struct {
	Flags      uint16
	UnitsPerEm uint16
	XMin       int16
	YMin       int16
	XMax       int16
	YMax       int16
	MacStyle   uint16
}

func (f *font) parseHead(r *byteReader) (*HeadTable, error) {
	_, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "head"}
	}

	// Skip version, revision, checksum adjustment and magic number.
	if err := r.Skip(16); err != nil {
		return nil, err
	}

	t := &HeadTable{}
	if err := r.read(&t.Flags, &t.UnitsPerEm); err != nil {
		return nil, err
	}
	if t.UnitsPerEm == 0 {
		// All normalized measurements divide by unitsPerEm.
		common.Log.Debugf("head unitsPerEm is zero")
		return nil, errRangeCheck
	}

	// Skip created and modified timestamps.
	if err := r.Skip(16); err != nil {
		return nil, err
	}

	return t, r.read(&t.XMin, &t.YMin, &t.XMax, &t.YMax, &t.MacStyle)
}
