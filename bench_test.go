package bloom

import (
	"fmt"
	"testing"
)

const (
	benchItems  = 1_000_000
	benchFPRate = 0.01
)

// Pre-generate test data to avoid measuring key generation
var benchKeys [][]byte
var benchKeysStr []string

func init() {
	benchKeys = make([][]byte, benchItems)
	benchKeysStr = make([]string, benchItems)
	for i := range benchItems {
		s := fmt.Sprintf("key-%d", i)
		benchKeys[i] = []byte(s)
		benchKeysStr[i] = s
	}
}

func BenchmarkFilterAdd(b *testing.B) {
	f := New(benchItems, benchFPRate)
	b.ResetTimer()
	for i := range b.N {
		f.Add(benchKeys[i%benchItems])
	}
}

func BenchmarkFilterAddString(b *testing.B) {
	f := New(benchItems, benchFPRate)
	b.ResetTimer()
	for i := range b.N {
		f.AddString(benchKeysStr[i%benchItems])
	}
}

func BenchmarkFilterTest(b *testing.B) {
	f := New(benchItems, benchFPRate)
	for _, k := range benchKeys {
		f.Add(k)
	}
	b.ResetTimer()
	for i := range b.N {
		f.Test(benchKeys[i%benchItems])
	}
}

func BenchmarkSharedAdd(b *testing.B) {
	f, err := NewShared(benchItems, benchFPRate)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		_ = f.Add(benchKeys[i%benchItems])
	}
}

func BenchmarkSharedMember(b *testing.B) {
	f, err := NewShared(benchItems, benchFPRate)
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range benchKeys {
		_ = f.Add(k)
	}
	b.ResetTimer()
	for i := range b.N {
		_, _ = f.Member(benchKeys[i%benchItems])
	}
}

func BenchmarkSharedMemberParallel(b *testing.B) {
	f, err := NewShared(benchItems, benchFPRate)
	if err != nil {
		b.Fatal(err)
	}
	for _, k := range benchKeys {
		_ = f.Add(k)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = f.Member(benchKeys[i%benchItems])
			i++
		}
	})
}
