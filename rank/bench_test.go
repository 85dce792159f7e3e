package rank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvrank/rank"
)

var sinkRes *rank.Result

// BenchmarkRun measures the full pipeline on sparse random graphs.
func BenchmarkRun(b *testing.B) {
	for _, n := range []int{50, 200, 500} {
		g := RandomGraph(n, 4/float64(n), 99)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := rank.Run(g, rank.DefaultConfig())
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}
