// Package whirlpool implements the Whirlpool hash function, the final
// (2003) revision standardized in ISO/IEC 10118-3.
package whirlpool

import "hash"

// Size is the size of a Whirlpool digest in bytes.
const Size = 64

// BlockSize is the block size of Whirlpool in bytes.
const BlockSize = 64

const rounds = 10

// sbox is the Whirlpool substitution box; the cipher tables and the round
// constants are both derived from it at init time.
var sbox = [256]byte{
	0x18, 0x23, 0xc6, 0xe8, 0x87, 0xb8, 0x01, 0x4f, 0x36, 0xa6, 0xd2, 0xf5, 0x79, 0x6f, 0x91, 0x52,
	0x60, 0xbc, 0x9b, 0x8e, 0xa3, 0x0c, 0x7b, 0x35, 0x1d, 0xe0, 0xd7, 0xc2, 0x2e, 0x4b, 0xfe, 0x57,
	0x15, 0x77, 0x37, 0xe5, 0x9f, 0xf0, 0x4a, 0xda, 0x58, 0xc9, 0x29, 0x0a, 0xb1, 0xa0, 0x6b, 0x85,
	0xbd, 0x5d, 0x10, 0xf4, 0xcb, 0x3e, 0x05, 0x67, 0xe4, 0x27, 0x41, 0x8b, 0xa7, 0x7d, 0x95, 0xd8,
	0xfb, 0xee, 0x7c, 0x66, 0xdd, 0x17, 0x47, 0x9e, 0xca, 0x2d, 0xbf, 0x07, 0xad, 0x5a, 0x83, 0x33,
	0x63, 0x02, 0xaa, 0x71, 0xc8, 0x19, 0x49, 0xd9, 0xf2, 0xe3, 0x5b, 0x88, 0x9a, 0x26, 0x32, 0xb0,
	0xe9, 0x0f, 0xd5, 0x80, 0xbe, 0xcd, 0x34, 0x48, 0xff, 0x7a, 0x90, 0x5f, 0x20, 0x68, 0x1a, 0xae,
	0xb4, 0x54, 0x93, 0x22, 0x64, 0xf1, 0x73, 0x12, 0x40, 0x08, 0xc3, 0xec, 0xdb, 0xa1, 0x8d, 0x3d,
	0x97, 0x00, 0xcf, 0x2b, 0x76, 0x82, 0xd6, 0x1b, 0xb5, 0xaf, 0x6a, 0x50, 0x45, 0xf3, 0x30, 0xef,
	0x3f, 0x55, 0xa2, 0xea, 0x65, 0xba, 0x2f, 0xc0, 0xde, 0x1c, 0xfd, 0x4d, 0x92, 0x75, 0x06, 0x8a,
	0xb2, 0xe6, 0x0e, 0x1f, 0x62, 0xd4, 0xa8, 0x96, 0xf9, 0xc5, 0x25, 0x59, 0x84, 0x72, 0x39, 0x4c,
	0x5e, 0x78, 0x38, 0x8c, 0xd1, 0xa5, 0xe2, 0x61, 0xb3, 0x21, 0x9c, 0x1e, 0x43, 0xc7, 0xfc, 0x04,
	0x51, 0x99, 0x6d, 0x0d, 0xfa, 0xdf, 0x7e, 0x24, 0x3b, 0xab, 0xce, 0x11, 0x8f, 0x4e, 0xb7, 0xeb,
	0x3c, 0x81, 0x94, 0xf7, 0xb9, 0x13, 0x2c, 0xd3, 0xe7, 0x6e, 0xc4, 0x03, 0x56, 0x44, 0x7f, 0xa9,
	0x2a, 0xbb, 0xc1, 0x53, 0xdc, 0x0b, 0x9d, 0x6c, 0x31, 0x74, 0xf6, 0x46, 0xac, 0x89, 0x14, 0xe1,
	0x16, 0x3a, 0x69, 0x09, 0x70, 0xb6, 0xd0, 0xed, 0xcc, 0x42, 0x98, 0xa4, 0x28, 0x5c, 0xf8, 0x86,
}

// ct holds the eight circulant cipher tables; ct[t] is ct[0] rotated right
// by 8*t bits. rc holds the round constants, read straight out of the S-box.
var (
	ct [8][256]uint64
	rc [rounds]uint64
)

func init() {
	// Row polynomial (1, 1, 4, 1, 8, 5, 2, 9) over GF(2^8) mod x^8+x^4+x^3+x^2+1.
	for x := 0; x < 256; x++ {
		v1 := uint64(sbox[x])
		v2 := double(v1)
		v4 := double(v2)
		v8 := double(v4)
		c0 := v1<<56 | v1<<48 | v4<<40 | v1<<32 |
			v8<<24 | (v4^v1)<<16 | v2<<8 | (v8 ^ v1)
		ct[0][x] = c0
		for t := 1; t < 8; t++ {
			ct[t][x] = c0>>(8*uint(t)) | c0<<(64-8*uint(t))
		}
	}
	for r := 0; r < rounds; r++ {
		for i := 0; i < 8; i++ {
			rc[r] = rc[r]<<8 | uint64(sbox[8*r+i])
		}
	}
}

func double(v uint64) uint64 {
	v <<= 1
	if v > 0xff {
		v ^= 0x11d
	}
	return v
}

type digest struct {
	h  [8]uint64
	x  [BlockSize]byte
	nx int
	// 128-bit byte counter; the length field in the padding is 256 bits
	// wide but only the low 128 are ever nonzero here.
	lenLo uint64
	lenHi uint64
}

// New returns a new hash.Hash computing the Whirlpool checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = [8]uint64{}
	d.nx = 0
	d.lenLo = 0
	d.lenHi = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	d.lenLo += uint64(nn)
	if d.lenLo < uint64(nn) {
		d.lenHi++
	}
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
	// Single 0x80 byte, then zero fill so the 32-byte length field ends a
	// block. The fill is never empty: a tail of 31 bytes mod 64 spills
	// into an extra block.
	pad := make([]byte, 0, 2*BlockSize)
	pad = append(pad, d.x[:d.nx]...)
	pad = append(pad, 0x80)
	zeros := BlockSize - ((len(pad) + 32) % BlockSize)
	pad = append(pad, make([]byte, zeros+32)...)
	bitsHi := d.lenHi<<3 | d.lenLo>>61
	bitsLo := d.lenLo << 3
	putUint64BE(pad[len(pad)-16:], bitsHi)
	putUint64BE(pad[len(pad)-8:], bitsLo)
	blocks(d, pad)

	var out [Size]byte
	for i, s := range d.h {
		putUint64BE(out[i*8:], s)
	}
	return out
}

// Sum returns the Whirlpool checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// blocks runs the W block cipher over each 64-byte block in
// Miyaguchi-Preneel mode.
func blocks(d *digest, p []byte) {
	for len(p) >= BlockSize {
		var m, k, s [8]uint64
		for i := 0; i < 8; i++ {
			m[i] = uint64BE(p[i*8:])
			k[i] = d.h[i]
			s[i] = m[i] ^ k[i]
		}

		for r := 0; r < rounds; r++ {
			var l [8]uint64
			for i := 0; i < 8; i++ {
				for t := 0; t < 8; t++ {
					l[i] ^= ct[t][byte(k[(i-t)&7]>>(56-8*uint(t)))]
				}
			}
			l[0] ^= rc[r]
			k = l

			for i := 0; i < 8; i++ {
				l[i] = k[i]
				for t := 0; t < 8; t++ {
					l[i] ^= ct[t][byte(s[(i-t)&7]>>(56-8*uint(t)))]
				}
			}
			s = l
		}

		for i := 0; i < 8; i++ {
			d.h[i] ^= s[i] ^ m[i]
		}
		p = p[BlockSize:]
	}
}

func uint64BE(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

func putUint64BE(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}
