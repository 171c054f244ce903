package kvx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/kvx2vox/internal/kvxtest"
	"github.com/voxelsplace/kvx2vox/kvx"
	"github.com/voxelsplace/kvx2vox/voxel"
)

func expandBytes(t *testing.T, data []byte) ([]voxel.Voxel, error) {
	t.Helper()
	m, err := kvx.Parse(data)
	require.NoError(t, err)
	return kvx.Expand(m)
}

func TestExpand_SingleColumn(t *testing.T) {
	data := kvxtest.New(1, 1, 4).Add(0, 0, 0, 5, 7).Bytes()
	got, err := expandBytes(t, data)
	require.NoError(t, err)
	require.Equal(t, []voxel.Voxel{
		{X: 0, Y: 0, Z: 4, Color: 5},
		{X: 0, Y: 0, Z: 3, Color: 7},
	}, got)
}

func TestExpand_OrderAndCount(t *testing.T) {
	got, err := expandBytes(t, sampleBuilder().Bytes())
	require.NoError(t, err)
	// heights 3 + 1 + 2 + 1
	require.Len(t, got, 7)
	require.Equal(t, []voxel.Voxel{
		{X: 0, Y: 0, Z: 6, Color: 1},
		{X: 0, Y: 0, Z: 5, Color: 2},
		{X: 0, Y: 0, Z: 4, Color: 3},
		{X: 0, Y: 2, Z: 8, Color: 9},
		{X: 0, Y: 2, Z: 3, Color: 10},
		{X: 0, Y: 2, Z: 2, Color: 11},
		{X: 1, Y: 1, Z: 1, Color: 4},
	}, got)
}

func TestExpand_ZInversion(t *testing.T) {
	const sizeZ = 32
	for _, tc := range []struct{ top, height int }{{0, 1}, {3, 5}, {10, 22}, {31, 1}} {
		colors := make([]uint8, tc.height)
		b := kvxtest.New(1, 1, sizeZ).Add(0, 0, uint8(tc.top), colors...)
		got, err := expandBytes(t, b.Bytes())
		require.NoError(t, err)
		require.Len(t, got, tc.height)
		for dz, v := range got {
			require.Equal(t, uint8(sizeZ-tc.top-dz), v.Z, "top %d dz %d", tc.top, dz)
		}
	}
}

func TestExpand_EmptyRowsKeepNeighbors(t *testing.T) {
	b := kvxtest.New(1, 4, 8).
		Add(0, 0, 1, 20).
		Add(0, 3, 4, 30, 31)
	m, err := kvx.Parse(b.Bytes())
	require.NoError(t, err)
	require.Equal(t, m.XYOffsets[0][1], m.XYOffsets[0][2])
	require.Equal(t, m.XYOffsets[0][2], m.XYOffsets[0][3])

	got, err := kvx.Expand(m)
	require.NoError(t, err)
	require.Equal(t, []voxel.Voxel{
		{X: 0, Y: 0, Z: 7, Color: 20},
		{X: 0, Y: 3, Z: 4, Color: 30},
		{X: 0, Y: 3, Z: 3, Color: 31},
	}, got)
}

func TestExpand_EmptyModel(t *testing.T) {
	got, err := expandBytes(t, kvxtest.New(3, 3, 3).Bytes())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestExpand_CullInfoIgnored(t *testing.T) {
	b := kvxtest.New(1, 1, 4)
	xoff, xyoff, slabs := b.Add(0, 0, 1, 6).Layout()
	slabs[2] = 0x3F
	got, err := expandBytes(t, kvxtest.Encode(b.Header(), xoff, xyoff, slabs, nil))
	require.NoError(t, err)
	require.Equal(t, []voxel.Voxel{{X: 0, Y: 0, Z: 3, Color: 6}}, got)
}

func TestExpand_Errors(t *testing.T) {
	t.Run("negative run length", func(t *testing.T) {
		b := kvxtest.New(1, 2, 8).Add(0, 0, 0, 1).Add(0, 1, 0, 2)
		xoff, xyoff, slabs := b.Layout()
		xyoff[0][2] = 2 // row 1 now ends before it begins
		_, err := expandBytes(t, kvxtest.Encode(b.Header(), xoff, xyoff, slabs, nil))
		require.ErrorIs(t, err, kvx.ErrNegativeRunLength)
		var fe *kvx.FormatError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, 0, fe.Column)
		require.Equal(t, 1, fe.Row)
	})

	t.Run("run overruns row", func(t *testing.T) {
		b := kvxtest.New(1, 1, 8)
		xoff, xyoff, slabs := b.Add(0, 0, 0, 1, 2, 3).Layout()
		slabs[1] = 4 // claims one color byte more than the row holds
		_, err := expandBytes(t, kvxtest.Encode(b.Header(), xoff, xyoff, slabs, nil))
		require.ErrorIs(t, err, kvx.ErrRunLengthMismatch)
	})

	t.Run("trailing partial header", func(t *testing.T) {
		b := kvxtest.New(1, 1, 8)
		xoff, xyoff, slabs := b.Add(0, 0, 0, 1).Layout()
		slabs = append(slabs, 0, 1)
		xyoff[0][1] += 2
		xoff[1] += 2
		_, err := expandBytes(t, kvxtest.Encode(b.Header(), xoff, xyoff, slabs, nil))
		require.ErrorIs(t, err, kvx.ErrRunLengthMismatch)
	})

	t.Run("row past slab data", func(t *testing.T) {
		b := kvxtest.New(1, 1, 8)
		xoff, xyoff, slabs := b.Add(0, 0, 0, 1).Layout()
		xyoff[0][1] = 40
		_, err := expandBytes(t, kvxtest.Encode(b.Header(), xoff, xyoff, slabs, nil))
		require.ErrorIs(t, err, kvx.ErrTruncatedSlabData)
	})

	t.Run("z below zero", func(t *testing.T) {
		data := kvxtest.New(1, 1, 4).Add(0, 0, 3, 1, 2, 3).Bytes()
		_, err := expandBytes(t, data)
		require.ErrorIs(t, err, kvx.ErrCoordinateRange)
	})
}
