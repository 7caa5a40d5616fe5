// Command lvtour solves and generates travelling salesman instances.
//
//	lvtour solve graph.json
//	lvtour generate random --n 8 --p 0.7 --seed 3 | lvtour solve - --events log
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvtour:", err)
		os.Exit(1)
	}
}
