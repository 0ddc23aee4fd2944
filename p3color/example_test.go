package p3color_test

import (
	"fmt"

	"github.com/katalvlaran/lvplane/p3color"
)

func ExampleColor() {
	c := p3color.Color(k3(), []uint32{0}, []uint32{1, 2})
	fmt.Println(c)
	// Output: [1 2 2]
}
