//go:build bench
// +build bench

package reader

import (
	"bytes"
	"io"
	"testing"
)

func BenchmarkBinaryReader_Advance(b *testing.B) {
	benchmarks := []struct {
		name string
		rec  []byte
	}{
		{"string", tagBytes(0, cstring("SECTION")...)},
		{"double", tagBytes(10, doubleBytes(123.456)...)},
		{"int16", tagBytes(70, 1, 0)},
		{"handle", tagBytes(330, cstring("1AF0")...)},
		{"chunk", tagBytes(310, append([]byte{16}, bytes.Repeat([]byte{0xAB}, 16)...)...)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			stream := header()
			for i := 0; i < 1000; i++ {
				stream = append(stream, bm.rec...)
			}
			b.SetBytes(int64(len(bm.rec)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				r, err := NewBinaryReader(bytes.NewReader(stream), nil)
				if err != nil {
					b.Fatal(err)
				}
				for {
					if _, err := r.Advance(); err != nil {
						if err == io.EOF {
							break
						}
						b.Fatal(err)
					}
				}
			}
		})
	}
}
