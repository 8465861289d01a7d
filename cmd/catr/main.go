// Command catr concatenates files or standard input to standard output.
package main

import (
	"os"

	"github.com/rcarmo/catr/pkg/catr"
	"github.com/rcarmo/catr/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(catr.Run(stdio, os.Args[1:]))
}
