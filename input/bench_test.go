package input

import (
	"bytes"
	"context"
	"testing"
)

func BenchmarkParseRune(b *testing.B) {
	buf := []byte("x")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parseKey(buf, true)
	}
}

func BenchmarkParseCSI(b *testing.B) {
	buf := []byte("\x1b[1;5C")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parseKey(buf, true)
	}
}

func BenchmarkParseUTF8(b *testing.B) {
	buf := []byte("é")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		parseKey(buf, true)
	}
}

func BenchmarkReaderThroughput(b *testing.B) {
	// A mixed burst: printable runes, an arrow, and a ctrl byte.
	burst := bytes.Repeat([]byte("ab\x1b[A\x03"), 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rd := NewReader(context.Background(), bytes.NewReader(burst))
		for range rd.Events() {
		}
	}
}
