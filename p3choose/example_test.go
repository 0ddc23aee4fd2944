package p3choose_test

import (
	"fmt"

	"github.com/katalvlaran/lvplane/color"
	"github.com/katalvlaran/lvplane/p3choose"
)

func ExampleChoose() {
	g := k3Aug()
	lists := []color.List{
		color.NewList(1, 2, 3),
		color.NewList(1, 2, 3),
		color.NewList(1, 2, 3),
	}
	c := p3choose.Choose(g, lists, []uint32{0, 1, 2})
	fmt.Println(c[0] != c[1] && c[1] != c[2] && c[0] != c[2])
	// Output: true
}
