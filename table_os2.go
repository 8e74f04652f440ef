/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// OS2Table represents the Windows metrics table (OS/2). The field set is
// version-gated: code page ranges exist from version 1 and the cap height
// from version 2; on older fonts the cap height is derived from the unit
// scale instead.
//
// TypoDescender and WinDescent are normalized to non-positive values
// regardless of the sign stored in the font; WinDescent keeps the stored
// magnitude reinterpreted as a signed 16-bit quantity.
type OS2Table struct {
	Version            uint16
	AvgCharWidth       int16
	WeightClass        uint16
	WidthClass         uint16
	Type               int16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]byte
	VendorID           tag
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
	TypoAscender       int16
	TypoDescender      int16
	TypoLineGap        int16
	WinAscent          int
	WinDescent         int
	CodePageRange1     int32 // Version > 0.
	CodePageRange2     int32 // Version > 0.
	CapHeight          int   // Version > 1; otherwise derived.
}

func (f *font) parseOS2(r *byteReader) (*OS2Table, error) {
	_, has, err := f.seekToTable(r, "OS/2")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, MissingTableError{Tag: "OS/2"}
	}

	t := &OS2Table{}
	err = r.read(&t.Version, &t.AvgCharWidth, &t.WeightClass, &t.WidthClass, &t.Type)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.SubscriptXSize, &t.SubscriptYSize, &t.SubscriptXOffset, &t.SubscriptYOffset)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.SuperscriptXSize, &t.SuperscriptYSize, &t.SuperscriptXOffset, &t.SuperscriptYOffset)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.StrikeoutSize, &t.StrikeoutPosition, &t.FamilyClass)
	if err != nil {
		return nil, err
	}

	var panose []byte
	if err := r.readBytes(&panose, 10); err != nil {
		return nil, err
	}
	copy(t.Panose[:], panose)

	// Skip the four Unicode range fields.
	if err := r.Skip(16); err != nil {
		return nil, err
	}

	err = r.read(&t.VendorID, &t.Selection, &t.FirstCharIndex, &t.LastCharIndex)
	if err != nil {
		return nil, err
	}

	err = r.read(&t.TypoAscender, &t.TypoDescender)
	if err != nil {
		return nil, err
	}
	if t.TypoDescender > 0 {
		t.TypoDescender = -t.TypoDescender
	}
	if err := r.read(&t.TypoLineGap); err != nil {
		return nil, err
	}

	var winAscent, winDescent uint16
	if err := r.read(&winAscent, &winDescent); err != nil {
		return nil, err
	}
	t.WinAscent = int(winAscent)
	t.WinDescent = int(winDescent)
	if t.WinDescent > 0 {
		t.WinDescent = int(int16(-t.WinDescent))
	}

	if t.Version > 0 {
		if err := r.read(&t.CodePageRange1, &t.CodePageRange2); err != nil {
			return nil, err
		}
	}

	if t.Version > 1 {
		// Skip sxHeight.
		if err := r.Skip(2); err != nil {
			return nil, err
		}
		var capHeight int16
		if err := r.read(&capHeight); err != nil {
			return nil, err
		}
		t.CapHeight = int(capHeight)
	} else {
		t.CapHeight = int(0.7 * float64(f.head.UnitsPerEm))
	}

	return t, nil
}
