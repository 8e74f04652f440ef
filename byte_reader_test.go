/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package opentype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteReaderRead(t *testing.T) {
	w := &byteWriter{}
	w.write(uint32(0x00010000), makeTag("head"), int16(-1200), uint16(2048), uint8(7))
	r := newByteReader(w.bytes())

	var v32 uint32
	var tg tag
	var vi16 int16
	var vu16 uint16
	var vu8 uint8
	require.NoError(t, r.read(&v32, &tg, &vi16, &vu16, &vu8))

	assert.Equal(t, uint32(0x00010000), v32)
	assert.Equal(t, "head", tg.String())
	assert.Equal(t, int16(-1200), vi16)
	assert.Equal(t, uint16(2048), vu16)
	assert.Equal(t, uint8(7), vu8)
	assert.Equal(t, int64(13), r.Offset())
}

func TestByteReaderSeekSkip(t *testing.T) {
	w := &byteWriter{}
	w.write([]uint16{0, 1, 2, 3, 4})
	r := newByteReader(w.bytes())

	require.NoError(t, r.Skip(4))
	var v uint16
	require.NoError(t, r.read(&v))
	assert.Equal(t, uint16(2), v)

	require.NoError(t, r.Seek(2))
	require.NoError(t, r.read(&v))
	assert.Equal(t, uint16(1), v)
	assert.Equal(t, int64(4), r.Offset())
}

func TestByteReaderSlice(t *testing.T) {
	w := &byteWriter{}
	w.write([]uint16{10, 20, 30})
	r := newByteReader(w.bytes())

	var vals []uint16
	require.NoError(t, r.readSlice(&vals, 3))
	assert.Equal(t, []uint16{10, 20, 30}, vals)
}

func TestByteReaderView(t *testing.T) {
	w := &byteWriter{}
	w.write([]uint16{10, 20, 30})
	r := newByteReader(w.bytes())

	require.NoError(t, r.Skip(2))

	// The view gets its own cursor over the same bytes.
	v := r.view()
	assert.Equal(t, int64(6), v.length())
	var first uint16
	require.NoError(t, v.read(&first))
	assert.Equal(t, uint16(10), first)

	var second uint16
	require.NoError(t, r.read(&second))
	assert.Equal(t, uint16(20), second)
}
