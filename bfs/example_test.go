package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvplane/bfs"
)

func ExampleRun() {
	g := gridGraph(4, 4)
	tree := bfs.Run(g, 5)
	path := bfs.PathToRoot(tree, 10)

	// path is ordered from target back to root; reverse for display.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	fmt.Println(path)
	// Output: [5 6 10]
}
