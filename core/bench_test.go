package core_test

import (
	"testing"

	"github.com/katalvlaran/lvrank/core"
)

// BenchmarkAddEdge measures insertion into a growing ring.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	g := core.NewGraph()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(core.VertexID(i), core.VertexID(i+1))
	}
}

// BenchmarkVertices measures the sorted enumeration used by the rank builder.
func BenchmarkVertices(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 10_000; i++ {
		_ = g.AddEdge(core.VertexID(i*7919%10_000), core.VertexID(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Vertices()
	}
}
