// Package md2 implements the MD2 hash algorithm as defined in RFC 1319.
//
// MD2 is obsolete; it exists here for interoperability with legacy formats
// (old certificates, PEM archives).
package md2

import "hash"

// Size is the size of an MD2 digest in bytes.
const Size = 16

// BlockSize is the block size of MD2 in bytes.
const BlockSize = 16

// piSubst is the MD2 substitution table, a permutation of 0..255 built from
// the digits of pi.
var piSubst = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6, 19,
	98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188, 76, 130, 202,
	30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24, 138, 23, 229, 18,
	190, 78, 196, 214, 218, 158, 222, 73, 160, 251, 245, 142, 187, 47, 238, 122,
	169, 104, 121, 145, 21, 178, 7, 63, 148, 194, 16, 137, 11, 34, 95, 33,
	128, 127, 93, 154, 90, 144, 50, 39, 53, 62, 204, 231, 191, 247, 151, 3,
	255, 25, 48, 179, 72, 165, 181, 209, 215, 94, 146, 42, 172, 86, 170, 198,
	79, 184, 56, 210, 150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241,
	69, 157, 112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2,
	27, 96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197, 234, 38,
	44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65, 129, 77, 82,
	106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123, 8, 12, 189, 177, 74,
	120, 136, 149, 139, 227, 99, 232, 109, 233, 203, 213, 254, 59, 0, 29, 57,
	242, 239, 183, 14, 102, 88, 208, 228, 166, 119, 114, 248, 235, 117, 75, 10,
	49, 68, 80, 180, 143, 237, 31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

// digest carries the 48-byte working buffer, the running checksum and the
// partial input block.
type digest struct {
	state [48]byte
	cks   [16]byte
	cksL  byte
	x     [BlockSize]byte
	nx    int
}

// New returns a new hash.Hash computing the MD2 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.state = [48]byte{}
	d.cks = [16]byte{}
	d.cksL = 0
	d.nx = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
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
	// Pad with n bytes of value n (1..16), then compress the running
	// checksum as one extra block.
	pad := byte(BlockSize - d.nx)
	var block [BlockSize]byte
	copy(block[:], d.x[:d.nx])
	for i := d.nx; i < BlockSize; i++ {
		block[i] = pad
	}
	blocks(d, block[:])
	cks := d.cks
	blocks(d, cks[:])

	var out [Size]byte
	copy(out[:], d.state[:16])
	return out
}

// Sum returns the MD2 checksum of data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

func blocks(d *digest, p []byte) {
	for len(p) >= BlockSize {
		m := p[:BlockSize]

		// Checksum update rides along with every compressed block.
		l := d.cksL
		for j := 0; j < 16; j++ {
			d.cks[j] ^= piSubst[m[j]^l]
			l = d.cks[j]
		}
		d.cksL = l

		for j := 0; j < 16; j++ {
			d.state[j+16] = m[j]
			d.state[j+32] = m[j] ^ d.state[j]
		}
		var t byte
		for j := 0; j < 18; j++ {
			for k := 0; k < 48; k++ {
				d.state[k] ^= piSubst[t]
				t = d.state[k]
			}
			t += byte(j)
		}

		p = p[BlockSize:]
	}
}
