package has160

import (
	"encoding/hex"
	"strings"
	"testing"
)

// Vectors from the TTA reference document.
var golden = []struct{ want, in string }{
	{"307964ef34151d37c8047adec7ab50f4ff89762d", ""},
	{"4872bcbc4cd0f0a9dc7c2f7045e5b43b6c830db8", "a"},
	{"975e810488cf2a3d49838478124afce4b1c78804", "abc"},
	{"2338dbc8638d31225f73086246ba529f96710bc6", "message digest"},
	{"596185c9ab6703d0d0dbb98702bc0f5729cd1d3c", "abcdefghijklmnopqrstuvwxyz"},
	{"abe2b8c711f9e8579aa8eb40757a27b4ef14a7ea", "The quick brown fox jumps over the lazy dog"},
}

var goldenRepeat = []struct {
	n    int
	want string
}{
	{0, "307964ef34151d37c8047adec7ab50f4ff89762d"},
	{1, "4872bcbc4cd0f0a9dc7c2f7045e5b43b6c830db8"},
	{55, "50f1a0660cd8bb19bdae13dbddcb9e9df84d96e6"},
	{63, "b7d82945f5cc52c6a569055b8cfdac0e4a236d35"},
	{64, "d98a869c1f27711aec9f06d93450e6318db1ef64"},
	{65, "c0488ff5daf96c05a858579811329116776e45c3"},
	{128, "0e263a5c3fc9a10c7b81511c964daaa1bcf0a8e3"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		sum := Sum([]byte(g.in))
		if got := hex.EncodeToString(sum[:]); got != g.want {
			t.Fatalf("Sum(%q) = %s, want %s", g.in, got, g.want)
		}
	}
}

func TestGoldenRepeat(t *testing.T) {
	for _, g := range goldenRepeat {
		sum := Sum([]byte(strings.Repeat("a", g.n)))
		if got := hex.EncodeToString(sum[:]); got != g.want {
			t.Fatalf("len %d: got %s, want %s", g.n, got, g.want)
		}
	}
}

func TestChunking(t *testing.T) {
	in := []byte(strings.Repeat("abcde", 40))
	want := Sum(in)
	for split := 0; split <= len(in); split++ {
		h := New()
		h.Write(in[:split])
		h.Write(in[split:])
		if got := h.Sum(nil); hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
			t.Fatalf("split %d: got %x, want %x", split, got, want)
		}
	}
}

func TestSumKeepsStateWritable(t *testing.T) {
	h := New()
	h.Write([]byte("ab"))
	h.Sum(nil)
	h.Write([]byte("c"))
	want := Sum([]byte("abc"))
	if got := h.Sum(nil); hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("write after Sum: got %x, want %x", got, want)
	}
}

func TestReset(t *testing.T) {
	h := New()
	h.Write([]byte("garbage"))
	h.Reset()
	h.Write([]byte("abc"))
	want := Sum([]byte("abc"))
	if got := h.Sum(nil); hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("after Reset: got %x, want %x", got, want)
	}
}
