// Command lvforest runs spanning-tree, partition and traversal kernels over
// a graph file.
//
//	lvforest mst   --graph g.yaml --start a [--max]
//	lvforest kspan --graph g.yaml --start a --k 2 [--max] [--store-path dir --write name]
//	lvforest bfs   --graph g.txt  --start a [--target x | --max-depth n | --max-cost c | --expr '...']
//	lvforest dfs   ...
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
