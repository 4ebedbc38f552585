package hashes

import (
	"reflect"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	want := []string{"blake224", "blake2b-512", "has160", "md2", "md5", "ripemd160", "whirlpool"}
	if got := List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("sha0"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	} else if !strings.Contains(err.Error(), "unknown algorithm") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHexSum(t *testing.T) {
	cases := []struct{ algo, want string }{
		{"md5", "900150983cd24fb0d6963f7d28e17f72"},
		{"md2", "da853b0d3f88d99b30283a69e6ded6bb"},
		{"has160", "975e810488cf2a3d49838478124afce4b1c78804"},
		{"ripemd160", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"blake224", "7c270941a0b4a412db099b710da90112ce49f8510add4f896c07ace4"},
		{"blake2b-512", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
		{"whirlpool", "4e2448a4c6f486bb16b6562c73b4020bf3043e3a731bce721ae1b303d97e6d4c7181eebdb6c57e277d0e34957114cbd6c797fc9d95d8b582d225292076d4eef5"},
	}
	for _, c := range cases {
		got, err := HexSum(c.algo, []byte("abc"))
		if err != nil {
			t.Fatalf("%s: %v", c.algo, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %s, want %s", c.algo, got, c.want)
		}
	}
}

func TestSizes(t *testing.T) {
	cases := []struct {
		algo        string
		size, block int
	}{
		{"md2", 16, 16},
		{"md5", 16, 64},
		{"has160", 20, 64},
		{"ripemd160", 20, 64},
		{"blake224", 28, 64},
		{"blake2b-512", 64, 128},
		{"whirlpool", 64, 64},
	}
	for _, c := range cases {
		if got := Size(c.algo); got != c.size {
			t.Fatalf("Size(%s) = %d, want %d", c.algo, got, c.size)
		}
		if got := BlockSize(c.algo); got != c.block {
			t.Fatalf("BlockSize(%s) = %d, want %d", c.algo, got, c.block)
		}
	}
	if Size("nope") != 0 || BlockSize("nope") != 0 {
		t.Fatal("unknown algorithm should report 0 sizes")
	}
}

func TestVerify(t *testing.T) {
	ok, err := Verify("md5", "900150983CD24FB0D6963F7D28E17F72", []byte("abc"))
	if err != nil || !ok {
		t.Fatalf("uppercase hex should verify: ok=%v err=%v", ok, err)
	}
	ok, err = Verify("md5", " 900150983cd24fb0d6963f7d28e17f72 ", []byte("abc"))
	if err != nil || !ok {
		t.Fatalf("padded hex should verify: ok=%v err=%v", ok, err)
	}
	ok, err = Verify("md5", "d41d8cd98f00b204e9800998ecf8427e", []byte("abc"))
	if err != nil || ok {
		t.Fatalf("wrong digest should not verify: ok=%v err=%v", ok, err)
	}
	ok, err = Verify("md5", "not-hex-at-all", []byte("abc"))
	if err != nil || ok {
		t.Fatalf("malformed target should not verify: ok=%v err=%v", ok, err)
	}
	if _, err := Verify("sha0", "00", nil); err == nil {
		t.Fatal("unknown algorithm should error")
	}
}

func TestNewReturnsDistinctInstances(t *testing.T) {
	h1, err := New("md5")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := New("md5")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Fatal("New must return distinct instances")
	}
}
