package kvx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/kvx2vox/internal/kvxtest"
	"github.com/voxelsplace/kvx2vox/kvx"
)

func TestScale6To8(t *testing.T) {
	require.Equal(t, uint8(0), kvx.Scale6To8(0))
	require.Equal(t, uint8(4), kvx.Scale6To8(1))
	require.Equal(t, uint8(130), kvx.Scale6To8(32))
	require.Equal(t, uint8(255), kvx.Scale6To8(63))
	require.Equal(t, uint8(255), kvx.Scale6To8(200))

	for v := 0; v <= 63; v++ {
		want := uint8(math.Round(float64(v) * 255 / 63))
		require.Equal(t, want, kvx.Scale6To8(uint8(v)), "v=%d", v)
	}
}

func TestPaletteRGBA(t *testing.T) {
	p := kvxtest.Ramp()
	require.Equal(t, [4]uint8{0, 0, 255, 255}, p.RGBA(0))
	require.Equal(t, [4]uint8{255, 61, 0, 255}, p.RGBA(63))
}
