/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "github.com/docpipe/opentype/internal/common"

// BBox is a glyph bounding box normalized to 1000 units per em.
type BBox struct {
	XMin int
	YMin int
	XMax int
	YMax int
}

// readBBoxes extracts per-glyph bounding boxes from the 'loca' and 'glyf'
// tables. The result has one entry per glyph; a glyph whose two consecutive
// loca offsets are equal has a zero-length outline and a nil entry. An absent
// loca table yields a nil slice, not an error; an absent glyf table once loca
// exists is fatal.
func (f *font) readBBoxes(r *byteReader) ([]*BBox, error) {
	headTr, has := f.trec.trMap["head"]
	if !has {
		return nil, MissingTableError{Tag: "head"}
	}
	// indexToLocFormat selects short (u16, doubled) or long (u32) loca
	// entries.
	if err := r.Seek(int64(headTr.offset) + 50); err != nil {
		return nil, err
	}
	var locaFormat uint16
	if err := r.read(&locaFormat); err != nil {
		return nil, err
	}
	locaShort := locaFormat == 0

	locaTr, has := f.trec.trMap["loca"]
	if !has {
		common.Log.Debugf("loca table absent, no bounding boxes available")
		return nil, nil
	}
	if err := r.Seek(int64(locaTr.offset)); err != nil {
		return nil, err
	}

	var loca []int
	if locaShort {
		entries := int(locaTr.length) / 2
		loca = make([]int, entries)
		for k := range loca {
			var v uint16
			if err := r.read(&v); err != nil {
				return nil, err
			}
			loca[k] = int(v) * 2
		}
	} else {
		entries := int(locaTr.length) / 4
		loca = make([]int, entries)
		for k := range loca {
			var v int32
			if err := r.read(&v); err != nil {
				return nil, err
			}
			loca[k] = int(v)
		}
	}
	if len(loca) == 0 {
		return nil, nil
	}

	glyfTr, has := f.trec.trMap["glyf"]
	if !has {
		return nil, MissingTableError{Tag: "glyf"}
	}

	unitsPerEm := int(f.head.UnitsPerEm)
	bboxes := make([]*BBox, len(loca)-1)
	for glyph := 0; glyph < len(loca)-1; glyph++ {
		start := loca[glyph]
		if start == loca[glyph+1] {
			// Zero-length outline, no box.
			continue
		}
		// +2 skips the contour count field of the glyph header.
		if err := r.Seek(int64(glyfTr.offset) + int64(start) + 2); err != nil {
			return nil, err
		}
		var xMin, yMin, xMax, yMax int16
		if err := r.read(&xMin, &yMin, &xMax, &yMax); err != nil {
			return nil, err
		}
		bboxes[glyph] = &BBox{
			XMin: int(xMin) * unitsNormalization / unitsPerEm,
			YMin: int(yMin) * unitsNormalization / unitsPerEm,
			XMax: int(xMax) * unitsNormalization / unitsPerEm,
			YMax: int(yMax) * unitsNormalization / unitsPerEm,
		}
	}

	return bboxes, nil
}
