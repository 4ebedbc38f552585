// Package blake1 implements the BLAKE-224 hash function, the 224-bit
// variant of the original BLAKE SHA-3 finalist (14 rounds, 32-bit words).
package blake1

import "hash"

// Size224 is the size of a BLAKE-224 digest in bytes.
const Size224 = 28

// BlockSize is the block size of BLAKE-224 in bytes.
const BlockSize = 64

// uTable holds the first digits of pi; the G function XORs message words
// against these constants.
var uTable = [16]uint32{
	0x243f6a88, 0x85a308d3, 0x13198a2e, 0x03707344,
	0xa4093822, 0x299f31d0, 0x082efa98, 0xec4e6c89,
	0x452821e6, 0x38d01377, 0xbe5466cf, 0x34e90c6c,
	0xc0ac29b7, 0xc97c50dd, 0x3f84d5b5, 0xb5470917,
}

// sigma is the message word permutation schedule; round r uses sigma[r%10].
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

const rounds = 14

type digest struct {
	h  [8]uint32
	x  [BlockSize]byte
	nx int
	// len counts message bits, advanced per compressed block by the
	// block's non-padding bit count.
	len uint64
}

// New224 returns a new hash.Hash computing the BLAKE-224 checksum.
func New224() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h[0] = 0xc1059ed8
	d.h[1] = 0x367cd507
	d.h[2] = 0x3070dd17
	d.h[3] = 0xf70e5939
	d.h[4] = 0xffc00b31
	d.h[5] = 0x68581511
	d.h[6] = 0x64f98fa7
	d.h[7] = 0xbefa4fa4
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size224 }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			blocks(d, d.x[:], 0)
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(d, p[:n], 0)
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

func (d *digest) checkSum() [Size224]byte {
	bits := d.len + uint64(d.nx)*8

	pad := make([]byte, 0, 2*BlockSize)
	pad = append(pad, d.x[:d.nx]...)
	pad = append(pad, 0x80)
	zeros := BlockSize - ((len(pad) + 8) % BlockSize)
	pad = append(pad, make([]byte, zeros+8)...)
	putUint32BE(pad[len(pad)-8:], uint32(bits>>32))
	putUint32BE(pad[len(pad)-4:], uint32(bits))
	blocks(d, pad, uint32(zeros+9))

	var out [Size224]byte
	for i := 0; i < 7; i++ {
		putUint32BE(out[i*4:], d.h[i])
	}
	return out
}

// Sum224 returns the BLAKE-224 checksum of data.
func Sum224(data []byte) [Size224]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// blocks compresses every 64-byte block of p. paddingLen is the number of
// padding bytes per block: 0 during streaming, zeros+9 during finalization.
// The counter arithmetic wraps in uint32 on purpose; a block consisting
// purely of padding contributes nothing and skips the counter mix entirely.
func blocks(d *digest, p []byte, paddingLen uint32) {
	for len(p) >= BlockSize {
		var m [16]uint32
		for i := 0; i < 16; i++ {
			m[i] = uint32BE(p[i*4:])
		}

		var v [16]uint32
		copy(v[:8], d.h[:])
		copy(v[8:], uTable[:8])

		nonPaddingBits := (uint32(BlockSize) - paddingLen) * 8
		d.len += uint64(nonPaddingBits)
		if nonPaddingBits > 0 {
			t0 := uint32(d.len)
			t1 := uint32(d.len >> 32)
			v[12] ^= t0
			v[13] ^= t0
			v[14] ^= t1
			v[15] ^= t1
		}

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
			d.h[i] ^= v[i] ^ v[i+8]
		}
		p = p[BlockSize:]
	}
}

func g(v *[16]uint32, m *[16]uint32, a, b, c, d, x, y int) {
	v[a] += v[b] + (m[x] ^ uTable[y])
	v[d] = rotr32(v[d]^v[a], 16)
	v[c] += v[d]
	v[b] = rotr32(v[b]^v[c], 12)
	v[a] += v[b] + (m[y] ^ uTable[x])
	v[d] = rotr32(v[d]^v[a], 8)
	v[c] += v[d]
	v[b] = rotr32(v[b]^v[c], 7)
}

func rotr32(x uint32, s uint) uint32 { return x>>s | x<<(32-s) }

func uint32BE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putUint32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
