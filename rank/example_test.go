package rank_test

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/rank"
)

// ExampleRun ranks a 2-vertex graph where vertex 2 is a sink.
func ExampleRun() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2)

	cfg := rank.DefaultConfig()
	cfg.Stages = rank.StageBuild | rank.StageDangling | rank.StageSolve
	cfg.Epsilon = 1e-12

	res, err := rank.Run(g, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res.Ranked(rank.ByRank) {
		fmt.Printf("%d = %.4f%%\n", r.Vertex, 100*r.Score)
	}

	// Output:
	// 2 = 66.6667%
	// 1 = 33.3333%
}

// ExampleModel walks the lifecycle by hand.
func ExampleModel() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 1)

	md := rank.NewModel()
	_ = md.Build(g)
	_ = md.MixDamping(0.15)
	res, _ := md.Solve(1e-9, 100)

	fmt.Println(md.State(), res.Converged, res.Iterations)
	fmt.Println(md.CorrectDangling())

	// Output:
	// solved true 1
	// CorrectDangling: rank: model already solved
}
