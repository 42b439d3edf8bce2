package sdbm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	for _, tc := range []struct {
		key  string
		want uint64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 6363201},
		{"abc", 417419622498},
		{"hello", 7416051667693574450},
		{"symtable", 7612010355279080135},
		{"the quick brown fox jumps over the lazy dog", 16875476447322448275},
	} {
		require.Equal(t, tc.want, Sum64(tc.key), "sum of %q", tc.key)
	}
}

func TestSum64Wraps(t *testing.T) {
	key := strings.Repeat("z", 512)
	var want uint64
	for i := 0; i < len(key); i++ {
		want = want*65599 + uint64(key[i])
	}
	require.Equal(t, want, Sum64(key))
}

func TestSum64HighBytes(t *testing.T) {
	// bytes above 0x7f are added as unsigned values
	require.Equal(t, uint64(0xff), Sum64("\xff"))
	require.Equal(t, uint64(0x80)*65599+0x81, Sum64("\x80\x81"))
}

func TestIndex(t *testing.T) {
	for _, tc := range []struct {
		key     string
		n, want int
	}{
		{"", 509, 0},
		{"a", 509, 97},
		{"ab", 509, 192},
		{"ab", 1021, 329},
		{"abc", 509, 411},
		{"abc", 1021, 272},
		{"hello", 509, 228},
		{"hello", 1021, 859},
		{"symtable", 509, 78},
		{"symtable", 1021, 787},
	} {
		require.Equal(t, tc.want, Index(tc.key, tc.n), "index of %q mod %d", tc.key, tc.n)
	}
	require.Panics(t, func() { Index("a", 0) })
}

func BenchmarkSum64(b *testing.B) {
	key := strings.Repeat("symbol", 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum64(key)
	}
}
