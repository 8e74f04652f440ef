/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// maxGlyphIDCeiling is returned when the 'maxp' table is absent.
const maxGlyphIDCeiling = 65536

// readMaxGlyphID reads the glyph count from the 'maxp' table, or the
// implementation ceiling when the table is absent.
func (f *font) readMaxGlyphID(r *byteReader) (int, error) {
	tr, has := f.trec.trMap["maxp"]
	if !has {
		return maxGlyphIDCeiling, nil
	}

	// numGlyphs follows the 4-byte version field.
	if err := r.Seek(int64(tr.offset) + 4); err != nil {
		return 0, err
	}
	var numGlyphs uint16
	if err := r.read(&numGlyphs); err != nil {
		return 0, err
	}
	return int(numGlyphs), nil
}
