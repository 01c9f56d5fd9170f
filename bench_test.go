package enumap

import "testing"

var benchSink int

func BenchmarkMapSet(b *testing.B) {
	m := New[Fruit, int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Set(Banana, i)
	}
}

func BenchmarkMapGet(b *testing.B) {
	m := Of(KV[Fruit, int]{Banana, 200})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, _ := m.Get(Banana)
		benchSink += v
	}
}

func BenchmarkMapAll(b *testing.B) {
	m := Of(
		KV[Fruit, int]{Orange, 1},
		KV[Fruit, int]{Banana, 2},
		KV[Fruit, int]{Grape, 3},
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, v := range m.All() {
			benchSink += v
		}
	}
}

func BenchmarkSetContains(b *testing.B) {
	s := SetOf(Monday, Wednesday, Friday)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if s.Contains(Wednesday) {
			benchSink++
		}
	}
}

func BenchmarkSetUnion(b *testing.B) {
	a := SetOf(Monday, Tuesday, Wednesday)
	c := SetOf(Wednesday, Thursday, Friday)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range a.Union(c) {
			benchSink++
		}
	}
}
