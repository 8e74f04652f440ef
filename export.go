/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Font wraps a decoded font program for outside access. The primary cursor is
// mutated sequentially by the on-demand operations and is not safe for
// concurrent use without external synchronization; raw extraction goes
// through independent views and never disturbs it.
type Font struct {
	br *byteReader
	*font
}

// Parse decodes the font program in `data`.
func Parse(data []byte) (*Font, error) {
	return parse(data, -1, "")
}

// ParseCollection decodes the member font at `index` of the TrueType
// collection in `data`. A negative index decodes `data` as a bare font.
func ParseCollection(data []byte, index int) (*Font, error) {
	return parse(data, index, "")
}

// ParseFile decodes the font program in the file given by `filePath`. A
// trailing ",N" after a ".ttc" extension selects collection member N, e.g.
// "fonts/myfont.ttc,2".
func ParseFile(filePath string) (*Font, error) {
	name, index, err := splitCollectionIndex(filePath)
	if err != nil {
		return nil, err
	}
	return ParseCollectionFile(name, index)
}

// ParseCollectionFile decodes the member font at `index` of the TrueType
// collection in the file given by `filePath`. A negative index decodes the
// file as a bare font.
func ParseCollectionFile(filePath string, index int) (*Font, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return parse(data, index, filePath)
}

func parse(data []byte, index int, fileName string) (*Font, error) {
	r := newByteReader(data)

	fnt, err := parseFont(r, index, fileName)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// splitCollectionIndex splits the collection member index off a composed
// collection path. For input "myfont.ttc,2" the returns are "myfont.ttc" and
// 2; a path without a ",N" suffix returns index -1.
func splitCollectionIndex(filePath string) (string, int, error) {
	idx := strings.Index(strings.ToLower(filePath), ".ttc,")
	if idx < 0 {
		return filePath, -1, nil
	}
	index, err := strconv.Atoi(filePath[idx+5:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid collection index in %q: %w", filePath, err)
	}
	return filePath[:idx+4], index, nil
}

// NumTables returns the number of entries in the table directory.
func (f *Font) NumTables() int {
	return f.font.numTables()
}

// Head returns the decoded font header table.
func (f *Font) Head() *HeadTable {
	return f.font.head
}

// Hhea returns the decoded horizontal header table.
func (f *Font) Hhea() *HheaTable {
	return f.font.hhea
}

// OS2 returns the decoded Windows metrics table.
func (f *Font) OS2() *OS2Table {
	return f.font.os2
}

// Post returns the decoded PostScript metadata table, synthesized from the
// caret slope when the font has no post table.
func (f *Font) Post() *PostTable {
	return f.font.post
}

// Cmap returns the decoded character-to-glyph maps.
func (f *Font) Cmap() *CmapTable {
	return f.font.cmap
}

// NameEntries returns all naming table records grouped by name id, in the
// record order of the font.
func (f *Font) NameEntries() map[int][]NameEntry {
	return f.font.name.entries
}

// GlyphWidths returns the normalized advance widths indexed by glyph id. The
// slice length equals hhea.NumberOfHMetrics.
func (f *Font) GlyphWidths() []int {
	return f.font.widths
}

// GlyphWidth returns the normalized advance width of glyph `gid`, clamping
// ids beyond the width table to the last entry.
func (f *Font) GlyphWidth(gid int) int {
	return f.font.glyphWidth(gid)
}

// IsCFF reports whether the font contains a 'CFF ' table.
func (f *Font) IsCFF() bool {
	return f.font.cff
}

// FontData returns the complete underlying byte range of the font program
// through an independent view.
func (f *Font) FontData() ([]byte, error) {
	v := f.br.view()
	var b []byte
	if err := v.readBytes(&b, int(v.length())); err != nil {
		return nil, err
	}
	return b, nil
}

// CFFData returns the raw bytes of the 'CFF ' table through an independent
// view, or nil when no CFF table was detected.
func (f *Font) CFFData() ([]byte, error) {
	if !f.font.cff {
		return nil, nil
	}
	v := f.br.view()
	if err := v.Seek(int64(f.font.cffOffset)); err != nil {
		return nil, err
	}
	var b []byte
	if err := v.readBytes(&b, int(f.font.cffLength)); err != nil {
		return nil, err
	}
	return b, nil
}

// Kerning decodes the 'kern' table. The table is re-read from the source on
// every call; an absent table yields an empty mapping.
func (f *Font) Kerning() (KernTable, error) {
	return f.font.readKerning(f.br)
}

// GlyphBBoxes decodes per-glyph bounding boxes from the 'loca' and 'glyf'
// tables, re-reading the source on every call.
func (f *Font) GlyphBBoxes() ([]*BBox, error) {
	return f.font.readBBoxes(f.br)
}

// MaxGlyphID reads the glyph count from the 'maxp' table, re-reading the
// source on every call.
func (f *Font) MaxGlyphID() (int, error) {
	return f.font.readMaxGlyphID(f.br)
}

// PostscriptFontName resolves the PostScript font name: the first naming
// table entry with name id 6, falling back to the file name with spaces
// replaced by hyphens when the font was read from a path. The resolved name
// is cached on the handle.
func (f *Font) PostscriptFontName() string {
	if f.font.fontName != "" {
		return f.font.fontName
	}
	if names := f.font.name.entries[6]; len(names) > 0 {
		f.font.fontName = names[0].Value
	} else if f.font.fileName != "" {
		f.font.fontName = strings.ReplaceAll(filepath.Base(f.font.fileName), " ", "-")
	}
	return f.font.fontName
}
