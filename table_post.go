/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import (
	"math"

	"github.com/docpipe/opentype/internal/common"
)

// PostTable represents the PostScript metadata table (post). The table is
// optional: when absent, the italic angle is synthesized from the hhea caret
// slope and the remaining fields are left at their zero values.
type PostTable struct {
	ItalicAngle        float64 // In degrees.
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

func (f *font) parsePost(r *byteReader) (*PostTable, error) {
	_, has, err := f.seekToTable(r, "post")
	if err != nil {
		return nil, err
	}

	t := &PostTable{}
	if !has {
		common.Log.Debugf("post table absent, synthesizing italic angle from caret slope")
		t.ItalicAngle = -math.Atan2(float64(f.hhea.CaretSlopeRun), float64(f.hhea.CaretSlopeRise)) * 180 / math.Pi
		return t, nil
	}

	// Skip version.
	if err := r.Skip(4); err != nil {
		return nil, err
	}

	// The italic angle is a 16.16 fixed-point value in degrees.
	var mantissa int16
	var fraction uint16
	if err := r.read(&mantissa, &fraction); err != nil {
		return nil, err
	}
	t.ItalicAngle = float64(mantissa) + float64(fraction)/16384.0

	if err := r.read(&t.UnderlinePosition, &t.UnderlineThickness); err != nil {
		return nil, err
	}

	var fixedPitch uint32
	if err := r.read(&fixedPitch); err != nil {
		return nil, err
	}
	t.IsFixedPitch = fixedPitch != 0

	return t, nil
}
