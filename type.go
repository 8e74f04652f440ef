/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import "strings"

// tag is a 4-byte table, vendor or feature identifier.
type tag [4]uint8

func (t tag) String() string {
	return strings.TrimSpace(string(t[:]))
}

// key returns the exact 4-character directory key, trailing spaces included
// ("CFF " and "cvt " keep their padding).
func (t tag) key() string {
	return string(t[:])
}

func makeTag(s string) tag {
	bb := []byte(s)
	if len(bb) > 4 {
		bb = bb[:4]
	}
	for len(bb) < 4 {
		bb = append(bb, ' ')
	}

	var t tag
	copy(t[:], bb)
	return t
}
