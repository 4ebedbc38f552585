package hashes

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"edu/hashkit/blake1"
	"edu/hashkit/blake2b"
	"edu/hashkit/has160"
	"edu/hashkit/md2"
	"edu/hashkit/md5"
	"edu/hashkit/ripemd160"
	"edu/hashkit/whirlpool"
)

func init() {
	Register("blake224", blake1.New224)
	Register("blake2b-512", blake2b.New512)
	Register("has160", has160.New)
	Register("md2", md2.New)
	Register("md5", md5.New)
	Register("ripemd160", ripemd160.New)
	Register("whirlpool", whirlpool.New)
}

// Sum returns the digest of data under the named algorithm.
func Sum(name string, data []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// HexSum returns the lowercase hex digest of data under the named algorithm.
func HexSum(name string, data []byte) (string, error) {
	sum, err := Sum(name, data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Verify reports whether target is the hex digest of data under the named
// algorithm. Well-formed targets are decoded and compared as bytes; anything
// else falls back to a case-insensitive string compare and simply fails.
func Verify(name, target string, data []byte) (bool, error) {
	sum, err := Sum(name, data)
	if err != nil {
		return false, err
	}
	if th, ok := decodeTargetHex(target, len(sum)); ok {
		return subtle.ConstantTimeCompare(sum, th) == 1, nil
	}
	return strings.EqualFold(hex.EncodeToString(sum), strings.TrimSpace(target)), nil
}

// decodeTargetHex decodes target if it is exactly the hex form of a
// wantLen-byte digest.
func decodeTargetHex(target string, wantLen int) ([]byte, bool) {
	t := strings.TrimSpace(target)
	if len(t) != 2*wantLen {
		return nil, false
	}
	b, err := hex.DecodeString(t)
	if err != nil {
		return nil, false
	}
	return b, true
}
