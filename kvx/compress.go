package kvx

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Compressed reports whether data starts with a zstd frame.
func Compressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Inflate returns data decompressed when it is a zstd frame, unchanged
// otherwise. A raw .kvx never starts with the zstd magic: its first word is
// numBytes, which would have to exceed 4 GiB.
func Inflate(data []byte) ([]byte, error) {
	if !Compressed(data) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// Deflate compresses a .kvx image into a single zstd frame.
func Deflate(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
