// Package ripemd160 implements the RIPEMD-160 hash function, designed by
// Dobbertin, Bosselaers and Preneel.
package ripemd160

import "hash"

// Size is the size of a RIPEMD-160 digest in bytes.
const Size = 20

// BlockSize is the block size of RIPEMD-160 in bytes.
const BlockSize = 64

// Message word order and rotation amounts, left and right lines.
var (
	permLeft = [80]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
		3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
		1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
		4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
	}
	permRight = [80]int{
		5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
		6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
		15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
		8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
		12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
	}
	shiftLeft = [80]uint{
		11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
		7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
		11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
		11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
		9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
	}
	shiftRight = [80]uint{
		8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
		9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
		9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
		15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
		8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
	}
	constLeft  = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
	constRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}
)

type digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the RIPEMD-160 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h[0] = 0x67452301
	d.h[1] = 0xefcdab89
	d.h[2] = 0x98badcfe
	d.h[3] = 0x10325476
	d.h[4] = 0xc3d2e1f0
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			blocks(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	pad := make([]byte, 0, 2*BlockSize)
	pad = append(pad, d.x[:d.nx]...)
	pad = append(pad, 0x80)
	zeros := BlockSize - ((len(pad) + 8) % BlockSize)
	pad = append(pad, make([]byte, zeros+8)...)
	putUint64LE(pad[len(pad)-8:], d.len<<3)
	blocks(d, pad)

	var out [Size]byte
	for i, s := range d.h {
		putUint32LE(out[i*4:], s)
	}
	return out
}

// Sum returns the RIPEMD-160 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// boolFn is the shared nonlinear function; the right line walks it in
// reverse order (index 79-j).
func boolFn(j int, x, y, z uint32) uint32 {
	switch {
	case j < 16:
		return x ^ y ^ z
	case j < 32:
		return (x & y) | (^x & z)
	case j < 48:
		return (x | ^y) ^ z
	case j < 64:
		return (x & z) | (y & ^z)
	}
	return x ^ (y | ^z)
}

func blocks(d *digest, p []byte) {
	for len(p) >= BlockSize {
		var m [16]uint32
		for i := 0; i < 16; i++ {
			m[i] = uint32LE(p[i*4:])
		}

		a, b, c, e, f := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]
		aa, bb, cc, ee, ff := a, b, c, e, f
		for j := 0; j < 80; j++ {
			t := rotl32(a+boolFn(j, b, c, e)+m[permLeft[j]]+constLeft[j/16], shiftLeft[j]) + f
			a, b, c, e, f = f, t, b, rotl32(c, 10), e

			t = rotl32(aa+boolFn(79-j, bb, cc, ee)+m[permRight[j]]+constRight[j/16], shiftRight[j]) + ff
			aa, bb, cc, ee, ff = ff, t, bb, rotl32(cc, 10), ee
		}

		t := d.h[1] + c + ee
		d.h[1] = d.h[2] + e + ff
		d.h[2] = d.h[3] + f + aa
		d.h[3] = d.h[4] + a + bb
		d.h[4] = d.h[0] + b + cc
		d.h[0] = t

		p = p[BlockSize:]
	}
}

func rotl32(x uint32, s uint) uint32 { return x<<s | x>>(32-s) }

func uint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putUint64LE(b []byte, v uint64) {
	putUint32LE(b, uint32(v))
	putUint32LE(b[4:], uint32(v>>32))
}
