package kvx

// Palette is the 256-entry KVX palette with 6-bit (0..63) components.
type Palette [PaletteEntries][3]uint8

// Scale6To8 maps a 6-bit channel onto 0..255 as round(v*255/63). Values above
// 63 saturate.
func Scale6To8(v uint8) uint8 {
	if v >= 63 {
		return 255
	}
	return uint8((uint32(v)*255 + 31) / 63)
}

// RGBA returns entry i scaled to 8 bits with opaque alpha.
func (p *Palette) RGBA(i int) [4]uint8 {
	e := p[i]
	return [4]uint8{Scale6To8(e[0]), Scale6To8(e[1]), Scale6To8(e[2]), 255}
}
