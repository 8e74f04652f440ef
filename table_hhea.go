/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// HheaTable represents the horizontal header table (hhea).
// This table contains information for horizontal layout, and the caret slope
// used to synthesize an italic angle when the post table is absent.
type HheaTable struct {
	Ascender            int16
	Descender           int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	NumberOfHMetrics    uint16 // Number of hMetric entries in 'hmtx' table.
}

func (f *font) parseHhea(r *byteReader) (*HheaTable, error) {
	_, has, err := f.seekToTable(r, "hhea")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "hhea"}
	}

	// Skip version.
	if err := r.Skip(4); err != nil {
		return nil, err
	}

	t := &HheaTable{}
	err = r.read(&t.Ascender, &t.Descender, &t.LineGap)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.AdvanceWidthMax, &t.MinLeftSideBearing, &t.MinRightSideBearing, &t.XMaxExtent)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.CaretSlopeRise, &t.CaretSlopeRun)
	if err != nil {
		return nil, err
	}

	// Skip caretOffset, reserved bytes and metricDataFormat.
	if err := r.Skip(12); err != nil {
		return nil, err
	}

	return t, r.read(&t.NumberOfHMetrics)
}
