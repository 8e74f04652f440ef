/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// byteWriter builds big-endian binary fixtures for tests.
type byteWriter struct {
	buf bytes.Buffer
}

func (w *byteWriter) bytes() []byte {
	return w.buf.Bytes()
}

func (w *byteWriter) write(fields ...interface{}) {
	for _, f := range fields {
		switch t := f.(type) {
		case uint8, int8, uint16, int16, uint32, int32, tag:
			if err := binary.Write(&w.buf, binary.BigEndian, t); err != nil {
				panic(err)
			}
		case []uint16:
			for _, v := range t {
				w.write(v)
			}
		case []byte:
			w.buf.Write(t)
		case string:
			w.buf.WriteString(t)
		default:
			panic(fmt.Sprintf("unsupported type: %T", t))
		}
	}
}

// fontBuilder assembles a font program from table payloads, laying out the
// table directory in insertion order.
type fontBuilder struct {
	sfntVersion uint32
	tags        []string
	tables      map[string][]byte
}

func newFontBuilder() *fontBuilder {
	return &fontBuilder{
		sfntVersion: sfntVersionTrueType,
		tables:      map[string][]byte{},
	}
}

func (b *fontBuilder) add(tagName string, data []byte) *fontBuilder {
	if _, has := b.tables[tagName]; !has {
		b.tags = append(b.tags, tagName)
	}
	b.tables[tagName] = data
	return b
}

func (b *fontBuilder) bytes() []byte {
	return b.bytesAt(0)
}

// bytesAt lays the font out as if its table directory started at `base` in
// the final file, for embedding behind a collection header.
func (b *fontBuilder) bytesAt(base int) []byte {
	w := &byteWriter{}
	w.write(b.sfntVersion, uint16(len(b.tags)), uint16(0), uint16(0), uint16(0))

	offset := base + 12 + 16*len(b.tags)
	for _, tagName := range b.tags {
		data := b.tables[tagName]
		w.write(makeTag(tagName), uint32(0), uint32(offset), uint32(len(data)))
		offset += len(data)
	}
	for _, tagName := range b.tags {
		w.write(b.tables[tagName])
	}
	return w.bytes()
}

// collectionBytes wraps member fonts in a 'ttcf' header. All members share
// one layout, each with its own table directory and table copies.
func collectionBytes(builders ...*fontBuilder) []byte {
	w := &byteWriter{}
	w.write(makeTag("ttcf"), uint32(0x00010000), int32(len(builders)))

	headerLen := 12 + 4*len(builders)
	offset := headerLen
	var members [][]byte
	for _, b := range builders {
		member := b.bytesAt(offset)
		w.write(int32(offset))
		members = append(members, member)
		offset += len(member)
	}
	for _, member := range members {
		w.write(member)
	}
	return w.bytes()
}

func headData(unitsPerEm uint16, indexToLocFormat int16) []byte {
	w := &byteWriter{}
	w.write(uint32(0x00010000), uint32(0), uint32(0), uint32(0x5F0F3CF5))
	w.write(uint16(0), unitsPerEm)
	w.write(make([]byte, 16)) // created and modified.
	w.write(int16(-100), int16(-200), int16(1100), int16(900))
	w.write(uint16(1), uint16(8), int16(2), indexToLocFormat, int16(0))
	return w.bytes()
}

func hheaData(caretSlopeRise, caretSlopeRun int16, numberOfHMetrics uint16) []byte {
	w := &byteWriter{}
	w.write(uint32(0x00010000))
	w.write(int16(750), int16(-250), int16(90))
	w.write(uint16(1500), int16(-10), int16(-12), int16(1100))
	w.write(caretSlopeRise, caretSlopeRun)
	w.write(int16(0), int16(0), int16(0), int16(0), int16(0), int16(0))
	w.write(numberOfHMetrics)
	return w.bytes()
}

func os2Data(version uint16, typoDescender int16, winDescent uint16, capHeight int16) []byte {
	w := &byteWriter{}
	w.write(version, int16(500), uint16(400), uint16(5), int16(8))
	w.write(int16(650), int16(600), int16(0), int16(75))
	w.write(int16(650), int16(600), int16(0), int16(350))
	w.write(int16(50), int16(250), int16(0))
	w.write([]byte{2, 0, 0, 0, 0, 0, 0, 0, 0, 0}) // Panose.
	w.write(make([]byte, 16))                     // Unicode ranges.
	w.write(makeTag("TEST"), uint16(0x40), uint16(32), uint16(0xFFFD))
	w.write(int16(800), typoDescender, int16(200))
	w.write(uint16(1000), winDescent)
	if version > 0 {
		w.write(uint32(1), uint32(0))
	}
	if version > 1 {
		w.write(int16(500), capHeight, uint16(0), uint16(32), uint16(2))
	}
	return w.bytes()
}

func postData(mantissa int16, fraction uint16, fixedPitch uint32) []byte {
	w := &byteWriter{}
	w.write(uint32(0x00030000), mantissa, fraction)
	w.write(int16(-150), int16(50), fixedPitch)
	w.write(uint32(0), uint32(0), uint32(0), uint32(0))
	return w.bytes()
}

func hmtxData(advanceWidths []uint16) []byte {
	w := &byteWriter{}
	for _, aw := range advanceWidths {
		w.write(aw, int16(0))
	}
	return w.bytes()
}

func maxpData(numGlyphs uint16) []byte {
	w := &byteWriter{}
	w.write(uint32(0x00010000), numGlyphs)
	return w.bytes()
}

// locaShortData writes short-format loca entries: offsets in words, doubled
// by the decoder.
func locaShortData(wordOffsets []uint16) []byte {
	w := &byteWriter{}
	w.write(wordOffsets)
	return w.bytes()
}

func locaLongData(byteOffsets []int32) []byte {
	w := &byteWriter{}
	for _, off := range byteOffsets {
		w.write(off)
	}
	return w.bytes()
}

// glyfEntry is a 12-byte glyph: the 10-byte header plus padding in place of
// the outline data.
func glyfEntry(numberOfContours, xMin, yMin, xMax, yMax int16) []byte {
	w := &byteWriter{}
	w.write(numberOfContours, xMin, yMin, xMax, yMax, uint16(0))
	return w.bytes()
}

type cmapSub struct {
	platformID uint16
	encodingID uint16
	data       []byte
}

func cmapData(subs ...cmapSub) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(len(subs)))
	offset := 4 + 8*len(subs)
	for _, sub := range subs {
		w.write(sub.platformID, sub.encodingID, uint32(offset))
		offset += len(sub.data)
	}
	for _, sub := range subs {
		w.write(sub.data)
	}
	return w.bytes()
}

func cmapFormat0Data(gids [256]byte) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(262), uint16(0), gids[:])
	return w.bytes()
}

func cmapFormat4Data(endCount, startCount, idDelta, idRangeOffset, glyphIDs []uint16) []byte {
	segCount := len(endCount)
	length := 16 + 8*segCount + 2*len(glyphIDs)
	w := &byteWriter{}
	w.write(uint16(4), uint16(length), uint16(0))
	w.write(uint16(segCount*2), uint16(0), uint16(0), uint16(0))
	w.write(endCount, uint16(0), startCount, idDelta, idRangeOffset, glyphIDs)
	return w.bytes()
}

func cmapFormat6Data(firstCode uint16, gids []uint16) []byte {
	w := &byteWriter{}
	w.write(uint16(6), uint16(10+2*len(gids)), uint16(0))
	w.write(firstCode, uint16(len(gids)), gids)
	return w.bytes()
}

func cmapFormat12Data(groups [][3]uint32) []byte {
	w := &byteWriter{}
	w.write(uint16(12), uint16(0), uint32(16+12*len(groups)), uint32(0))
	w.write(uint32(len(groups)))
	for _, g := range groups {
		w.write(g[0], g[1], g[2])
	}
	return w.bytes()
}

type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	data       []byte
}

func nameData(records ...nameRecord) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(len(records)), uint16(6+12*len(records)))
	offset := 0
	for _, rec := range records {
		w.write(rec.platformID, rec.encodingID, rec.languageID, rec.nameID)
		w.write(uint16(len(rec.data)), uint16(offset))
		offset += len(rec.data)
	}
	for _, rec := range records {
		w.write(rec.data)
	}
	return w.bytes()
}

func utf16BE(s string) []byte {
	w := &byteWriter{}
	w.write(utf16.Encode([]rune(s)))
	return w.bytes()
}

type kernPair struct {
	left  uint16
	right uint16
	value int16
}

type kernSub struct {
	coverage uint16
	pairs    []kernPair
}

func kernData(subs ...kernSub) []byte {
	w := &byteWriter{}
	w.write(uint16(0), uint16(len(subs)))
	for _, sub := range subs {
		w.write(uint16(0), uint16(14+6*len(sub.pairs)), sub.coverage)
		w.write(uint16(len(sub.pairs)), uint16(0), uint16(0), uint16(0))
		for _, p := range sub.pairs {
			w.write(p.left, p.right, p.value)
		}
	}
	return w.bytes()
}

// defaultBuilder assembles a decodable TrueType font with a 1000 unit scale,
// two metric entries and a (3,1) cmap mapping 'A' to glyph 1.
func defaultBuilder() *fontBuilder {
	return newFontBuilder().
		add("head", headData(1000, 0)).
		add("hhea", hheaData(1, 0, 2)).
		add("OS/2", os2Data(0, -200, 250, 0)).
		add("post", postData(0, 0, 0)).
		add("hmtx", hmtxData([]uint16{1000, 500})).
		add("cmap", cmapData(cmapSub{3, 1, cmapFormat4Data(
			[]uint16{65, 0xFFFF},
			[]uint16{65, 0xFFFF},
			[]uint16{65472, 1}, // 65 maps to glyph 1.
			[]uint16{0, 0},
			nil,
		)})).
		add("name", nameData(
			nameRecord{3, 1, 0x409, 6, utf16BE("TestFont-Regular")},
			nameRecord{3, 1, 0x409, 1, utf16BE("Test Font")},
		))
}
