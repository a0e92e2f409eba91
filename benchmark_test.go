package uuidbin

import (
	"testing"
)

func BenchmarkParse(b *testing.B) {
	s := "6ccd780c-baba-1026-9564-0040f4311e29"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_NoHyphens(b *testing.B) {
	s := "6ccd780cbaba102695640040f4311e29"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Braced(b *testing.B) {
	s := "{6ccd780c-baba-1026-9564-0040f4311e29}"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsUUID(b *testing.B) {
	s := "6ccd780c-baba-1026-9564-0040f4311e29"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = IsUUID(s)
	}
}

func BenchmarkIsUUID_Invalid(b *testing.B) {
	s := "not-a-uuid"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = IsUUID(s)
	}
}

func BenchmarkUUIDToBin(b *testing.B) {
	s := "6ccd780c-baba-1026-9564-0040f4311e29"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := UUIDToBin(s, true)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBinToUUID(b *testing.B) {
	bin := MustParse("6ccd780c-baba-1026-9564-0040f4311e29").Bytes()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := BinToUUID(bin, true)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid := MustParse("6ccd780c-baba-1026-9564-0040f4311e29")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkSwapTimestamp(b *testing.B) {
	uuid := MustParse("6ccd780c-baba-1026-9564-0040f4311e29")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		swapTimestamp(&uuid)
		unswapTimestamp(&uuid)
	}
}

// Concurrent validation: all operations are pure, so parallel callers need
// no coordination.
func BenchmarkIsUUID_Parallel(b *testing.B) {
	s := "6ccd780c-baba-1026-9564-0040f4311e29"
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = IsUUID(s)
		}
	})
}
