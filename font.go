/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// font is the decoded data model with read-only access to the fixed tables.
// The fixed tables are decoded once at construction; kerning, bounding boxes
// and the max glyph id are decoded on demand, re-reading the source on every
// call.
type font struct {
	fileName        string
	ttcIndex        int // -1 for a bare font.
	directoryOffset int64

	trec *tableRecords

	cff       bool
	cffOffset uint32
	cffLength uint32

	head *HeadTable
	hhea *HheaTable
	os2  *OS2Table
	post *PostTable

	widths []int
	cmap   *CmapTable
	name   *nameTable

	fontName string
}

func parseFont(r *byteReader, ttcIndex int, fileName string) (*font, error) {
	f := &font{
		fileName: fileName,
		ttcIndex: ttcIndex,
	}

	if ttcIndex >= 0 {
		offset, err := readCollectionOffset(r, ttcIndex)
		if err != nil {
			return nil, err
		}
		f.directoryOffset = offset
	}

	var err error

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}
	f.checkCFF()

	// The order below is fixed: OS/2 and the glyph widths need head, the post
	// fallback needs hhea, and cmap needs the glyph widths.
	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseName(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.os2, err = f.parseOS2(r)
	if err != nil {
		return nil, err
	}

	f.post, err = f.parsePost(r)
	if err != nil {
		return nil, err
	}

	f.widths, err = f.parseGlyphWidths(r)
	if err != nil {
		return nil, err
	}

	f.cmap, err = f.parseCmap(r)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (f font) numTables() int {
	return len(f.trec.list)
}
