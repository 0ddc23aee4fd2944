package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvplane/dfs"
)

func ExampleRun() {
	data := dfs.Run(k3(), 0)
	fmt.Println(data.Numbering)
	// Output: [0 1 2]
}
