package room

import (
	"encoding/binary"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roomrow/parameter"
)

func TestBinaryRoundTrip(t *testing.T) {
	var src Room
	Floor(&src)
	src.Tiles[0][5] = TileWall
	src.Tiles[7][parameter.RoomWidth-1] = TileWall

	data, err := src.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, headerSize+parameter.RoomWidth*parameter.RoomHeight)

	var dst Room
	require.NoError(t, dst.UnmarshalBinary(data))
	assert.Equal(t, src.Tiles, dst.Tiles)
}

func TestUnmarshalBinary_Rejects(t *testing.T) {
	var valid Room
	Floor(&valid)
	good, err := valid.MarshalBinary()
	require.NoError(t, err)

	wrongDims := append([]byte(nil), good...)
	binary.LittleEndian.PutUint32(wrongDims[0:4], parameter.RoomWidth+1)

	badKind := append([]byte(nil), good...)
	badKind[headerSize] = 7

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrShortData},
		{"truncated header", good[:5], ErrShortData},
		{"truncated tiles", good[:len(good)-1], ErrShortData},
		{"wrong dimensions", wrongDims, ErrDimensions},
		{"unknown tile", badKind, ErrTileKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Room{}
			r.Tiles[0][0] = TileWall
			err := r.UnmarshalBinary(tt.data)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, TileWall, r.Tiles[0][0], "room must be untouched on error")
		})
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(t.TempDir() + "/rooms")
	row := NewRow()
	Floor(row.Room(3))
	row.Room(3).Tiles[1][1] = TileWall

	require.NoError(t, store.Save(row.Room(3), 3))
	assert.FileExists(t, store.Path(3))

	other := NewRow()
	require.NoError(t, store.Load(other.Room(3), 3))
	assert.Equal(t, row.Room(3).Tiles, other.Room(3).Tiles)
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	var r Room
	err := store.Load(&r, 0)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStoreLoadRow(t *testing.T) {
	store := NewStore(t.TempDir())

	var custom Room
	custom.Tiles[0][0] = TileWall
	require.NoError(t, store.Save(&custom, 2))

	row := NewRow()
	require.NoError(t, store.LoadRow(row))
	assert.Equal(t, custom.Tiles, row.Room(2).Tiles)

	var floor Room
	Floor(&floor)
	assert.Equal(t, floor.Tiles, row.Room(0).Tiles, "missing files fall back to the default layout")
}

func TestStoreLoadRowCorrupt(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(store.Path(1), []byte{1, 2, 3}, 0644))

	err := store.LoadRow(NewRow())
	assert.ErrorIs(t, err, ErrShortData)
}
