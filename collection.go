/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

// ttcTag is the magic at the start of a TrueType collection header.
var ttcTag = makeTag("ttcf")

// readCollectionOffset resolves the member font at `index` in a TrueType
// collection and returns the byte offset of that member's table directory.
// The reader is expected to be positioned at the start of the data.
func readCollectionOffset(r *byteReader, index int) (int64, error) {
	if index < 0 {
		return 0, ErrInvalidCollection
	}

	var mainTag tag
	if err := r.read(&mainTag); err != nil {
		return 0, err
	}
	if mainTag != ttcTag {
		return 0, ErrInvalidCollection
	}

	// Version field, unused.
	if err := r.Skip(4); err != nil {
		return 0, err
	}

	var dirCount int32
	if err := r.read(&dirCount); err != nil {
		return 0, err
	}
	if index >= int(dirCount) {
		return 0, ErrIndexOutOfRange
	}

	if err := r.Skip(index * 4); err != nil {
		return 0, err
	}
	var offset int32
	if err := r.read(&offset); err != nil {
		return 0, err
	}

	return int64(offset), nil
}
