// Package has160 implements the HAS-160 hash function, the Korean TTA
// standard (TTAS.KO-12.0011/R2) used alongside KCDSA.
package has160

import "hash"

// Size is the size of a HAS-160 digest in bytes.
const Size = 20

// BlockSize is the block size of HAS-160 in bytes.
const BlockSize = 64

// scheduleIdx selects, per step, which of the 20 schedule words feeds the
// step function. Entries 16..19 refer to the per-round XOR extension words.
var scheduleIdx = [80]int{
	18, 0, 1, 2, 3, 19, 4, 5, 6, 7, 16, 8, 9, 10, 11, 17, 12, 13, 14, 15,
	18, 3, 6, 9, 12, 19, 15, 2, 5, 8, 16, 11, 14, 1, 4, 17, 7, 10, 13, 0,
	18, 12, 5, 14, 7, 19, 0, 9, 2, 11, 16, 4, 13, 6, 15, 17, 8, 1, 10, 3,
	18, 7, 2, 13, 8, 19, 3, 14, 9, 4, 16, 15, 10, 5, 0, 17, 11, 6, 1, 12,
}

// stepShift is the per-step rotation of register a, identical in all four
// rounds.
var stepShift = [20]uint{5, 11, 7, 15, 6, 13, 8, 14, 7, 12, 9, 11, 8, 15, 6, 12, 9, 14, 5, 13}

var roundConst = [4]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc}

// roundShift rotates register b at the end of every step, per round.
var roundShift = [4]uint{10, 17, 25, 30}

type digest struct {
	h   [5]uint32
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the HAS-160 checksum.
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
	// MD5-style padding: 0x80, 1..BlockSize zero bytes, 64-bit
	// little-endian bit length.
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

// Sum returns the HAS-160 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func blocks(d *digest, p []byte) {
	for len(p) >= BlockSize {
		var x [20]uint32
		for i := 0; i < 16; i++ {
			x[i] = uint32LE(p[i*4:])
		}

		a, b, c, e, f := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]
		for round := 0; round < 4; round++ {
			base := round * 20
			x[16] = x[scheduleIdx[base+1]] ^ x[scheduleIdx[base+2]] ^ x[scheduleIdx[base+3]] ^ x[scheduleIdx[base+4]]
			x[17] = x[scheduleIdx[base+6]] ^ x[scheduleIdx[base+7]] ^ x[scheduleIdx[base+8]] ^ x[scheduleIdx[base+9]]
			x[18] = x[scheduleIdx[base+11]] ^ x[scheduleIdx[base+12]] ^ x[scheduleIdx[base+13]] ^ x[scheduleIdx[base+14]]
			x[19] = x[scheduleIdx[base+16]] ^ x[scheduleIdx[base+17]] ^ x[scheduleIdx[base+18]] ^ x[scheduleIdx[base+19]]

			for step := 0; step < 20; step++ {
				var boolFn uint32
				switch round {
				case 0:
					boolFn = (b & (c ^ e)) ^ e
				case 1, 3:
					boolFn = b ^ c ^ e
				case 2:
					boolFn = c ^ (b | ^e)
				}
				t := rotl32(a, stepShift[step]) + boolFn + f + x[scheduleIdx[base+step]] + roundConst[round]
				b = rotl32(b, roundShift[round])
				a, b, c, e, f = t, a, b, c, e
			}
		}
		d.h[0] += a
		d.h[1] += b
		d.h[2] += c
		d.h[3] += e
		d.h[4] += f

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
