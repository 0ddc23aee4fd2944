package builder_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvplane/builder"
)

func ExampleGenerateAbs() {
	rng := rand.New(rand.NewSource(0))
	g, err := builder.GenerateAbs(6, builder.WithRand(rng))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NumVertices())
	// Output: 6
}
