// Package blake2b implements the BLAKE2b hash function defined in RFC 7693,
// in its unkeyed 512-bit form.
package blake2b

import "hash"

// Size is the size of a BLAKE2b-512 digest in bytes.
const Size = 64

// BlockSize is the block size of BLAKE2b in bytes.
const BlockSize = 128

var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// sigma is the message schedule shared with BLAKE; round r uses sigma[r%10].
var sigma = [10][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

const rounds = 12

type digest struct {
	h [8]uint64
	c [2]uint64
	x [BlockSize]byte
	// nx may reach BlockSize: the last block is held back until either
	// more data arrives or the digest is finalized, because the final
	// compression needs its flag word set.
	nx int
}

// New512 returns a new hash.Hash computing the unkeyed BLAKE2b-512 checksum.
func New512() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = iv
	d.h[0] ^= 0x01010000 ^ uint64(Size)
	d.c[0] = 0
	d.c[1] = 0
	d.nx = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	left := BlockSize - d.nx
	if len(p) > left {
		copy(d.x[d.nx:], p[:left])
		d.nx = 0
		hashBlocks(&d.h, &d.c, 0, d.x[:])
		p = p[left:]
	}
	if length := len(p); length > BlockSize {
		n := length &^ (BlockSize - 1)
		if n == length {
			n -= BlockSize
		}
		hashBlocks(&d.h, &d.c, 0, p[:n])
		p = p[n:]
	}
	d.nx += copy(d.x[d.nx:], p)
	return
}

func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	var block [BlockSize]byte
	copy(block[:], d.x[:d.nx])
	remaining := uint64(BlockSize - d.nx)

	// hashBlocks advances the counter by a whole block; back the padding
	// bytes out first so only real input is counted.
	c := d.c
	if c[0] < remaining {
		c[1]--
	}
	c[0] -= remaining
	hashBlocks(&d.h, &c, 0xffffffffffffffff, block[:])

	var out [Size]byte
	for i, s := range d.h {
		putUint64LE(out[i*8:], s)
	}
	return out
}

// Sum512 returns the unkeyed BLAKE2b-512 checksum of data.
func Sum512(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func hashBlocks(h *[8]uint64, c *[2]uint64, flag uint64, p []byte) {
	for len(p) >= BlockSize {
		c[0] += BlockSize
		if c[0] < BlockSize {
			c[1]++
		}

		var m [16]uint64
		for i := 0; i < 16; i++ {
			m[i] = uint64LE(p[i*8:])
		}

		var v [16]uint64
		copy(v[:8], h[:])
		copy(v[8:], iv[:])
		v[12] ^= c[0]
		v[13] ^= c[1]
		v[14] ^= flag

		for r := 0; r < rounds; r++ {
			s := &sigma[r%10]
			g(&v, &m, 0, 4, 8, 12, s[0], s[1])
			g(&v, &m, 1, 5, 9, 13, s[2], s[3])
			g(&v, &m, 2, 6, 10, 14, s[4], s[5])
			g(&v, &m, 3, 7, 11, 15, s[6], s[7])
			g(&v, &m, 0, 5, 10, 15, s[8], s[9])
			g(&v, &m, 1, 6, 11, 12, s[10], s[11])
			g(&v, &m, 2, 7, 8, 13, s[12], s[13])
			g(&v, &m, 3, 4, 9, 14, s[14], s[15])
		}

		for i := 0; i < 8; i++ {
			h[i] ^= v[i] ^ v[i+8]
		}
		p = p[BlockSize:]
	}
}

func g(v *[16]uint64, m *[16]uint64, a, b, c, d, x, y int) {
	v[a] += v[b] + m[x]
	v[d] = rotr64(v[d]^v[a], 32)
	v[c] += v[d]
	v[b] = rotr64(v[b]^v[c], 24)
	v[a] += v[b] + m[y]
	v[d] = rotr64(v[d]^v[a], 16)
	v[c] += v[d]
	v[b] = rotr64(v[b]^v[c], 63)
}

func rotr64(x uint64, s uint) uint64 { return x>>s | x<<(64-s) }

func uint64LE(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
