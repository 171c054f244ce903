// Package voxel holds the sparse voxel record shared by the KVX decoder and
// the VOX encoder, plus a dense grid and greedy mesher for previews.
package voxel

// Voxel is one solid cell in VOX space (Z up).
type Voxel struct {
	X, Y, Z uint8
	Color   uint8
}

// Bounds returns the smallest box that holds every voxel, as exclusive
// upper limits. An empty slice yields zero bounds.
func Bounds(voxels []Voxel) (w, h, d int) {
	for _, v := range voxels {
		if int(v.X)+1 > w {
			w = int(v.X) + 1
		}
		if int(v.Y)+1 > h {
			h = int(v.Y) + 1
		}
		if int(v.Z)+1 > d {
			d = int(v.Z) + 1
		}
	}
	return
}
