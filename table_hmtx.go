/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// parseGlyphWidths extracts the advance widths from the 'hmtx' table, indexed
// by glyph id and normalized to 1000 units per em with integer truncation.
// Depends on hhea.NumberOfHMetrics and head.UnitsPerEm, both decoded earlier
// in the fixed sequence. The per-entry left side bearing is read and
// discarded.
func (f *font) parseGlyphWidths(r *byteReader) ([]int, error) {
	_, has, err := f.seekToTable(r, "hmtx")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "hmtx"}
	}

	unitsPerEm := int(f.head.UnitsPerEm)
	widths := make([]int, int(f.hhea.NumberOfHMetrics))
	for k := range widths {
		var advanceWidth uint16
		var lsb int16
		if err := r.read(&advanceWidth, &lsb); err != nil {
			return nil, err
		}
		widths[k] = int(advanceWidth) * unitsNormalization / unitsPerEm
	}

	return widths, nil
}

// glyphWidth returns the normalized advance width of glyph `gid`. A glyph id
// at or beyond the width table length clamps to the last entry.
func (f *font) glyphWidth(gid int) int {
	if len(f.widths) == 0 {
		return 0
	}
	if gid >= len(f.widths) {
		gid = len(f.widths) - 1
	}
	return f.widths[gid]
}
