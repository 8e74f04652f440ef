/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// tableRecord identifies one font table within the underlying source.
// The directory checksum field is read over and ignored; checksum
// validation is not performed here.
type tableRecord struct {
	tableTag tag
	offset   uint32
	length   uint32
}

// tableRecords represents the set of table records of one font.
// Includes a map keyed by the exact 4-character tag for quick lookup while
// preserving directory encounter order in the list.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

// parseTableRecords reads the table directory at f.directoryOffset, validating
// the sfnt signature.
func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	if err := r.Seek(f.directoryOffset); err != nil {
		return nil, err
	}

	var sfntVersion uint32
	if err := r.read(&sfntVersion); err != nil {
		return nil, err
	}
	if sfntVersion != sfntVersionTrueType && sfntVersion != sfntVersionCFF {
		return nil, ErrInvalidSignature
	}

	var numTables uint16
	if err := r.read(&numTables); err != nil {
		return nil, err
	}
	// Skip searchRange, entrySelector and rangeShift.
	if err := r.Skip(6); err != nil {
		return nil, err
	}

	trs := &tableRecords{
		trMap: map[string]tableRecord{},
	}
	for i := 0; i < int(numTables); i++ {
		var rec tableRecord
		if err := r.read(&rec.tableTag); err != nil {
			return nil, err
		}
		// Checksum, ignored.
		if err := r.Skip(4); err != nil {
			return nil, err
		}
		if err := r.read(&rec.offset, &rec.length); err != nil {
			return nil, err
		}
		trs.list = append(trs.list, rec)
		trs.trMap[rec.tableTag.key()] = rec
	}

	return trs, nil
}

// hasTable returns true if there is a record of `tableName` in `trs`.
func (trs *tableRecords) hasTable(tableName string) bool {
	_, has := trs.trMap[tableName]
	return has
}

// seekToTable seeks to the position of font table `tableName` in `r` if the
// font has the table. The table record is returned back when successful,
// otherwise is meaningless. The bool flag indicates that the table exists and
// the cursor is at its start if there was no error.
func (f *font) seekToTable(r *byteReader, tableName string) (tr tableRecord, has bool, err error) {
	tr, has = f.trec.trMap[tableName]
	if !has {
		return tr, false, nil
	}

	err = r.Seek(int64(tr.offset))
	if err != nil {
		return tr, false, err
	}

	return tr, true, nil
}

// checkCFF records the location of the 'CFF ' table when present, for later
// raw extraction. The CFF content itself is not decoded.
func (f *font) checkCFF() {
	tr, has := f.trec.trMap["CFF "]
	if !has {
		return
	}
	f.cff = true
	f.cffOffset = tr.offset
	f.cffLength = tr.length
}
