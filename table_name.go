/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "github.com/docpipe/opentype/internal/strutils"

// NameEntry is one decoded record from the naming table (name): the string
// for one name id in one platform/encoding/language combination.
type NameEntry struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	Value      string
}

// nameTable groups the decoded records by name id, preserving the record
// order of the font for each id so that "first entry" resolution is
// deterministic.
type nameTable struct {
	entries map[int][]NameEntry
}

func (f *font) parseName(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "name"}
	}

	// Skip format.
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	var count, stringOffset uint16
	if err := r.read(&count, &stringOffset); err != nil {
		return nil, err
	}

	t := &nameTable{
		entries: make(map[int][]NameEntry),
	}
	for k := 0; k < int(count); k++ {
		var platformID, encodingID, languageID, nameID, length, offset uint16
		err := r.read(&platformID, &encodingID, &languageID, &nameID, &length, &offset)
		if err != nil {
			return nil, err
		}

		pos := r.Offset()
		err = r.Seek(int64(tr.offset) + int64(stringOffset) + int64(offset))
		if err != nil {
			return nil, err
		}
		var data []byte
		if err := r.readBytes(&data, int(length)); err != nil {
			return nil, err
		}

		// Unicode platforms and the Windows platform store two-byte
		// big-endian code units; everything else is treated as single-byte
		// Windows-1252 text.
		var value string
		if platformID == 0 || platformID == 3 || (platformID == 2 && encodingID == 1) {
			value = strutils.UTF16ToString(data)
		} else {
			value = strutils.Windows1252ToString(data)
		}

		t.entries[int(nameID)] = append(t.entries[int(nameID)], NameEntry{
			PlatformID: platformID,
			EncodingID: encodingID,
			LanguageID: languageID,
			Value:      value,
		})

		if err := r.Seek(pos); err != nil {
			return nil, err
		}
	}

	return t, nil
}
