/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "github.com/docpipe/opentype/internal/common"

// CmapEntry pairs a glyph index with its advance width normalized to 1000
// units per em.
type CmapEntry struct {
	GID   int
	Width int
}

// CmapTable holds the character-to-glyph maps decoded from the 'cmap' table.
// The maps of interest are (1,0) for symbolic fonts and (3,1) for all others;
// a symbol font is defined as having the (3,0) sub-table, which is decoded
// into the Cmap10 slot. (3,10) sub-tables land in CmapExt.
type CmapTable struct {
	Cmap10       map[int]CmapEntry
	Cmap31       map[int]CmapEntry
	CmapExt      map[int]CmapEntry
	FontSpecific bool
}

func (f *font) parseCmap(r *byteReader) (*CmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "cmap"}
	}

	// Skip version.
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	var numTables uint16
	if err := r.read(&numTables); err != nil {
		return nil, err
	}

	t := &CmapTable{}
	var map10, map31, map30, mapExt int32
	for k := 0; k < int(numTables); k++ {
		var platID, encID uint16
		var offset int32
		if err := r.read(&platID, &encID, &offset); err != nil {
			return nil, err
		}
		switch {
		case platID == 3 && encID == 0:
			t.FontSpecific = true
			map30 = offset
		case platID == 3 && encID == 1:
			map31 = offset
		case platID == 3 && encID == 10:
			mapExt = offset
		case platID == 1 && encID == 0:
			map10 = offset
		}
	}

	base := int64(tr.offset)
	if map10 > 0 {
		format, err := f.seekSubtable(r, base, map10)
		if err != nil {
			return nil, err
		}
		switch format {
		case 0:
			t.Cmap10, err = f.readFormat0(r)
		case 4:
			t.Cmap10, err = f.readFormat4(r, false)
		case 6:
			t.Cmap10, err = f.readFormat6(r)
		}
		if err != nil {
			return nil, err
		}
	}
	if map31 > 0 {
		format, err := f.seekSubtable(r, base, map31)
		if err != nil {
			return nil, err
		}
		if format == 4 {
			t.Cmap31, err = f.readFormat4(r, false)
			if err != nil {
				return nil, err
			}
		}
	}
	if map30 > 0 {
		format, err := f.seekSubtable(r, base, map30)
		if err != nil {
			return nil, err
		}
		if format == 4 {
			// The symbol sub-table replaces whatever the Mac standard
			// sub-table put in this slot.
			t.Cmap10, err = f.readFormat4(r, t.FontSpecific)
			if err != nil {
				return nil, err
			}
		} else {
			t.FontSpecific = false
		}
	}
	if mapExt > 0 {
		format, err := f.seekSubtable(r, base, mapExt)
		if err != nil {
			return nil, err
		}
		switch format {
		case 0:
			t.CmapExt, err = f.readFormat0(r)
		case 4:
			t.CmapExt, err = f.readFormat4(r, false)
		case 6:
			t.CmapExt, err = f.readFormat6(r)
		case 12:
			t.CmapExt, err = f.readFormat12(r)
		}
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

// seekSubtable positions `r` inside a cmap sub-table and returns its format
// code. Unsupported format codes leave the slot undecoded, not an error.
func (f *font) seekSubtable(r *byteReader, base int64, offset int32) (uint16, error) {
	if err := r.Seek(base + int64(offset)); err != nil {
		return 0, err
	}
	var format uint16
	if err := r.read(&format); err != nil {
		return 0, err
	}
	return format, nil
}

// readFormat0 decodes the fixed 256-entry byte-indexed mapping.
func (f *font) readFormat0(r *byteReader) (map[int]CmapEntry, error) {
	h := make(map[int]CmapEntry)
	// Skip length and language.
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	for k := 0; k < 256; k++ {
		var gid uint8
		if err := r.read(&gid); err != nil {
			return nil, err
		}
		h[k] = CmapEntry{GID: int(gid), Width: f.glyphWidth(int(gid))}
	}
	return h, nil
}

// readFormat4 decodes the segmented mapping used by Windows sub-tables. With
// `fontSpecific` set, codes in the 0xF0xx private-use range are additionally
// registered under their plain low byte, aliasing symbol codes to their
// ASCII-range equivalents.
func (f *font) readFormat4(r *byteReader, fontSpecific bool) (map[int]CmapEntry, error) {
	h := make(map[int]CmapEntry)

	var tableLength uint16
	if err := r.read(&tableLength); err != nil {
		return nil, err
	}
	// Skip language.
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	var segCountX2 uint16
	if err := r.read(&segCountX2); err != nil {
		return nil, err
	}
	segCount := int(segCountX2) / 2
	// Skip searchRange, entrySelector and rangeShift.
	if err := r.Skip(6); err != nil {
		return nil, err
	}

	var endCount []uint16
	if err := r.readSlice(&endCount, segCount); err != nil {
		return nil, err
	}
	// Skip reservedPad.
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	var startCount, idDelta, idRangeOffset []uint16
	if err := r.readSlice(&startCount, segCount); err != nil {
		return nil, err
	}
	if err := r.readSlice(&idDelta, segCount); err != nil {
		return nil, err
	}
	if err := r.readSlice(&idRangeOffset, segCount); err != nil {
		return nil, err
	}

	glyphCount := int(tableLength)/2 - 8 - segCount*4
	if glyphCount < 0 {
		common.Log.Debugf("cmap format 4 declared length inconsistent with segment count")
		return nil, errRangeCheck
	}
	var glyphIDs []uint16
	if err := r.readSlice(&glyphIDs, glyphCount); err != nil {
		return nil, err
	}

	for k := 0; k < segCount; k++ {
		for j := int(startCount[k]); j <= int(endCount[k]) && j != 0xFFFF; j++ {
			var glyph int
			if idRangeOffset[k] == 0 {
				glyph = (j + int(idDelta[k])) & 0xFFFF
			} else {
				idx := k + int(idRangeOffset[k])/2 - segCount + j - int(startCount[k])
				if idx < 0 || idx >= len(glyphIDs) {
					// Real-world fonts rely on out-of-range entries being
					// dropped rather than rejected.
					continue
				}
				glyph = (int(glyphIDs[idx]) + int(idDelta[k])) & 0xFFFF
			}
			entry := CmapEntry{GID: glyph, Width: f.glyphWidth(glyph)}
			if fontSpecific && j&0xFF00 == 0xF000 {
				h[j&0xFF] = entry
			}
			h[j] = entry
		}
	}
	return h, nil
}

// readFormat6 decodes the trimmed table mapping: a dense run of glyph ids
// starting at one first code.
func (f *font) readFormat6(r *byteReader) (map[int]CmapEntry, error) {
	h := make(map[int]CmapEntry)
	// Skip length and language.
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	var startCode, codeCount uint16
	if err := r.read(&startCode, &codeCount); err != nil {
		return nil, err
	}
	for k := 0; k < int(codeCount); k++ {
		var gid uint16
		if err := r.read(&gid); err != nil {
			return nil, err
		}
		h[int(startCode)+k] = CmapEntry{GID: int(gid), Width: f.glyphWidth(int(gid))}
	}
	return h, nil
}

// readFormat12 decodes the segmented coverage mapping of 32-bit code points:
// each group maps a contiguous code range onto sequentially increasing glyph
// ids.
func (f *font) readFormat12(r *byteReader) (map[int]CmapEntry, error) {
	h := make(map[int]CmapEntry)
	// Skip reserved, length and language.
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	if err := r.Skip(8); err != nil {
		return nil, err
	}
	var nGroups int32
	if err := r.read(&nGroups); err != nil {
		return nil, err
	}
	for k := 0; k < int(nGroups); k++ {
		var startCharCode, endCharCode, startGlyphID int32
		if err := r.read(&startCharCode, &endCharCode, &startGlyphID); err != nil {
			return nil, err
		}
		gid := int(startGlyphID)
		for code := int(startCharCode); code <= int(endCharCode); code++ {
			h[code] = CmapEntry{GID: gid, Width: f.glyphWidth(gid)}
			gid++
		}
	}
	return h, nil
}
