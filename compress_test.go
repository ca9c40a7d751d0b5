package lz4

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "below-match-minimum", data: []byte("0123456789ab")},
		{name: "short-text", data: []byte("hello world, lz4 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "incompressible", data: randomBytes(8192, 42)},
		{name: "mixed-200k", data: mixedCorpus(200_000, 7)},
	}
}

func randomBytes(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// mixedCorpus interleaves repetitive text with noise bytes, so blocks contain
// literal runs and matches of many lengths.
func mixedCorpus(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	words := []string{
		"the quick brown fox jumps over the lazy dog ",
		"lorem ipsum dolor sit amet, consectetur adipiscing elit ",
		"0123456789abcdef",
		"compression",
	}

	var b bytes.Buffer
	for b.Len() < n {
		b.WriteString(words[rng.Intn(len(words))])
		if rng.Intn(4) == 0 {
			b.WriteByte(byte(rng.Intn(256)))
		}
	}
	return b.Bytes()[:n]
}

func TestCompressBlock_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			dst := make([]byte, CompressBlockBound(len(in.data)))
			n, err := CompressBlock(in.data, dst)
			if err != nil {
				t.Fatalf("CompressBlock failed: %v", err)
			}
			if n <= 0 {
				t.Fatalf("compressed size must be positive, got %d", n)
			}

			out := make([]byte, len(in.data))
			m, err := DecompressBlock(dst[:n], out)
			if err != nil {
				t.Fatalf("DecompressBlock failed: %v", err)
			}
			if m != len(in.data) || !bytes.Equal(out[:m], in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", m, len(in.data))
			}
		})
	}
}

func TestCompressBlock_EmptyInputYieldsOneByteBlock(t *testing.T) {
	dst := make([]byte, CompressBlockBound(0))

	n, err := CompressBlock(nil, dst)
	if err != nil {
		t.Fatalf("CompressBlock failed: %v", err)
	}
	if n != 1 || dst[0] != 0x00 {
		t.Fatalf("empty input should compress to the single token 0x00, got % x", dst[:n])
	}

	m, err := DecompressBlock(dst[:n], nil)
	if err != nil {
		t.Fatalf("DecompressBlock failed: %v", err)
	}
	if m != 0 {
		t.Fatalf("empty block should decode to 0 bytes, got %d", m)
	}
}

func TestCompressBlockFast_AccelerationClamping(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)
	bound := CompressBlockBound(len(data))

	compressAt := func(acceleration int) []byte {
		dst := make([]byte, bound)
		n, err := CompressBlockFast(data, dst, acceleration)
		if err != nil {
			t.Fatalf("CompressBlockFast(acceleration=%d) failed: %v", acceleration, err)
		}
		return dst[:n]
	}

	base := compressAt(1)
	if !bytes.Equal(compressAt(0), base) || !bytes.Equal(compressAt(-100), base) {
		t.Fatal("acceleration below 1 should be clamped to the default")
	}

	defaultDst := make([]byte, bound)
	n, err := CompressBlock(data, defaultDst)
	if err != nil {
		t.Fatalf("CompressBlock failed: %v", err)
	}
	if !bytes.Equal(defaultDst[:n], base) {
		t.Fatal("CompressBlock should match CompressBlockFast at acceleration 1")
	}

	if !bytes.Equal(compressAt(1<<20), compressAt(accelerationMax)) {
		t.Fatal("huge acceleration should be clamped to the maximum")
	}
}

func TestCompressBlockFast_AccelerationTradesRatio(t *testing.T) {
	data := mixedCorpus(64_000, 3)
	bound := CompressBlockBound(len(data))

	sizes := make([]int, 0, 3)
	for _, acceleration := range []int{1, 16, 65537} {
		dst := make([]byte, bound)
		n, err := CompressBlockFast(data, dst, acceleration)
		if err != nil {
			t.Fatalf("CompressBlockFast(acceleration=%d) failed: %v", acceleration, err)
		}

		out := make([]byte, len(data))
		m, err := DecompressBlock(dst[:n], out)
		if err != nil || m != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("round-trip failed at acceleration %d: %v", acceleration, err)
		}
		sizes = append(sizes, n)
	}

	if sizes[0] > sizes[1] || sizes[1] > sizes[2] {
		t.Fatalf("ratio should not improve with acceleration: %v", sizes)
	}
}

func TestCompressBlock_BackwardExtendedMatchOffsets(t *testing.T) {
	// A phrase repeated after noise is first found minMatch bytes into its
	// second copy, so the parser extends the match backwards over the literal
	// run; the emitted offset must follow the moved match start.
	phrase := []byte("the phrase returns and the match walks backwards.")

	for seed := int64(0); seed < 8; seed++ {
		data := append(randomBytes(300, seed), phrase...)
		data = append(data, phrase...)

		dst := make([]byte, CompressBlockBound(len(data)))
		n, err := CompressBlock(data, dst)
		if err != nil {
			t.Fatalf("seed %d: CompressBlock failed: %v", seed, err)
		}

		out := make([]byte, len(data))
		m, err := DecompressBlock(dst[:n], out)
		if err != nil {
			t.Fatalf("seed %d: DecompressBlock failed: %v", seed, err)
		}
		if m != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("seed %d: round-trip mismatch", seed)
		}
	}
}

func TestCompressBlock_DstTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("abcd"), 300)

	dst := make([]byte, CompressBlockBound(len(data)))
	n, err := CompressBlock(data, dst)
	if err != nil {
		t.Fatalf("CompressBlock failed: %v", err)
	}

	for _, size := range []int{0, 1, n / 2, n - 1} {
		if _, err := CompressBlock(data, make([]byte, size)); !errors.Is(err, ErrDstTooSmall) {
			t.Fatalf("dst of %d bytes: expected ErrDstTooSmall, got %v", size, err)
		}
	}

	// Even an empty source needs one byte of room for its token.
	if _, err := CompressBlock(nil, nil); !errors.Is(err, ErrDstTooSmall) {
		t.Fatalf("expected ErrDstTooSmall for empty dst, got %v", err)
	}
}

func TestCompressBlockBound(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 16},
		{1, 17},
		{254, 270},
		{255, 272},
		{65536, 65809},
		{MaxInputSize, MaxInputSize + MaxInputSize/255 + 16},
		{-1, 0},
		{MaxInputSize + 1, 0},
	}

	for _, tc := range cases {
		if got := CompressBlockBound(tc.n); got != tc.want {
			t.Errorf("CompressBlockBound(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestCompressDestSize(t *testing.T) {
	t.Run("everything-fits", func(t *testing.T) {
		data := bytes.Repeat([]byte("abc123"), 2000)
		dst := make([]byte, CompressBlockBound(len(data)))

		written, consumed, err := CompressDestSize(data, dst)
		if err != nil {
			t.Fatalf("CompressDestSize failed: %v", err)
		}
		if consumed != len(data) {
			t.Fatalf("roomy dst should consume all input: consumed=%d want=%d", consumed, len(data))
		}

		out := make([]byte, len(data))
		m, err := DecompressBlock(dst[:written], out)
		if err != nil || m != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("round-trip failed: m=%d err=%v", m, err)
		}
	})

	t.Run("partial-consume", func(t *testing.T) {
		data := randomBytes(4096, 99)
		dst := make([]byte, 1000)

		written, consumed, err := CompressDestSize(data, dst)
		if err != nil {
			t.Fatalf("CompressDestSize failed: %v", err)
		}
		if written > len(dst) || written < 900 {
			t.Fatalf("written=%d should nearly fill the 1000-byte dst", written)
		}
		if consumed <= 0 || consumed >= len(data) {
			t.Fatalf("consumed=%d should be a proper prefix of %d", consumed, len(data))
		}

		out := make([]byte, consumed)
		m, err := DecompressBlock(dst[:written], out)
		if err != nil {
			t.Fatalf("DecompressBlock failed: %v", err)
		}
		if m != consumed || !bytes.Equal(out, data[:consumed]) {
			t.Fatalf("block should decode to exactly the consumed prefix: m=%d consumed=%d", m, consumed)
		}
	})

	t.Run("one-byte-dst", func(t *testing.T) {
		written, consumed, err := CompressDestSize(bytes.Repeat([]byte("x"), 100), make([]byte, 1))
		if err != nil {
			t.Fatalf("CompressDestSize failed: %v", err)
		}
		if written != 1 || consumed != 0 {
			t.Fatalf("one-byte dst holds just an empty block: written=%d consumed=%d", written, consumed)
		}
	})

	t.Run("empty-dst", func(t *testing.T) {
		_, _, err := CompressDestSize([]byte("data"), nil)
		if !errors.Is(err, ErrDstTooSmall) {
			t.Fatalf("expected ErrDstTooSmall, got %v", err)
		}
	})

	t.Run("empty-src", func(t *testing.T) {
		written, consumed, err := CompressDestSize(nil, make([]byte, 8))
		if err != nil || written != 1 || consumed != 0 {
			t.Fatalf("empty src: written=%d consumed=%d err=%v", written, consumed, err)
		}
	})
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, acceleration uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		dst := make([]byte, CompressBlockBound(len(data)))
		n, err := CompressBlockFast(data, dst, int(acceleration))
		if err != nil {
			t.Fatalf("CompressBlockFast failed: %v", err)
		}

		out := make([]byte, len(data))
		m, err := DecompressBlock(dst[:n], out)
		if err != nil {
			t.Fatalf("DecompressBlock failed: %v", err)
		}
		if m != len(data) || !bytes.Equal(out[:m], data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", m, len(data))
		}

		fastOut := make([]byte, len(data))
		read, err := DecompressBlockFast(dst[:n], fastOut)
		if err != nil {
			t.Fatalf("DecompressBlockFast failed: %v", err)
		}
		if read != n || !bytes.Equal(fastOut, data) {
			t.Fatalf("fast decode mismatch: read=%d want=%d", read, n)
		}
	})
}
