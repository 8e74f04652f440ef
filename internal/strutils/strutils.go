/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package strutils decodes the string encodings used in font naming tables.
package strutils

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// UTF16ToString decodes big-endian UTF-16 bytes into a string. An odd
// trailing byte is dropped.
func UTF16ToString(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units))
}

// Windows1252ToString decodes Windows-1252 (CP1252) bytes into a string.
func Windows1252ToString(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = charmap.Windows1252.DecodeByte(c)
	}
	return string(runes)
}
