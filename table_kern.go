/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "github.com/docpipe/opentype/internal/common"

// KernTable maps packed glyph pairs (left glyph in the high 16 bits, right
// glyph in the low 16 bits) to kerning values normalized to 1000 units per
// em.
type KernTable map[uint32]int

// Get returns the kerning between glyphs `left` and `right`, or 0 when the
// pair is not kerned.
func (t KernTable) Get(left, right int) int {
	return t[uint32(left)<<16|uint32(right)&0xFFFF]
}

// readKerning decodes the 'kern' table. An absent table yields an empty
// mapping, not an error. Only pair-format sub-tables whose coverage matches
// (coverage & 0xFFF7) == 0x0001 contribute; sub-tables are chained through a
// running checkpoint advanced by each declared sub-table length.
func (f *font) readKerning(r *byteReader) (KernTable, error) {
	kerning := KernTable{}

	tr, has, err := f.seekToTable(r, "kern")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debugf("kern table absent")
		return kerning, nil
	}

	unitsPerEm := int(f.head.UnitsPerEm)

	if err := r.Seek(int64(tr.offset) + 2); err != nil {
		return nil, err
	}
	var nTables uint16
	if err := r.read(&nTables); err != nil {
		return nil, err
	}

	checkpoint := int64(tr.offset) + 4
	length := 0
	for k := 0; k < int(nTables); k++ {
		checkpoint += int64(length)
		if err := r.Seek(checkpoint); err != nil {
			return nil, err
		}
		// Skip sub-table version.
		if err := r.Skip(2); err != nil {
			return nil, err
		}
		var subLength, coverage uint16
		if err := r.read(&subLength, &coverage); err != nil {
			return nil, err
		}
		length = int(subLength)
		if coverage&0xFFF7 != 0x0001 {
			continue
		}

		var nPairs uint16
		if err := r.read(&nPairs); err != nil {
			return nil, err
		}
		// Skip the search optimization header.
		if err := r.Skip(6); err != nil {
			return nil, err
		}
		for j := 0; j < int(nPairs); j++ {
			var pair uint32
			var value int16
			if err := r.read(&pair, &value); err != nil {
				return nil, err
			}
			kerning[pair] = int(value) * unitsNormalization / unitsPerEm
		}
	}

	return kerning, nil
}
